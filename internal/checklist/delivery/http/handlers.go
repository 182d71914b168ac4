package http

import (
	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/pkg/response"
)

// Day godoc
// @Summary     Get a reconciled day checklist
// @Description Returns the full checklist state for one date, lazily initializing the day's backend records when none exist yet.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       resource path  string true  "Checklist resource" Enums(cafe, marshal)
// @Param       date     path  string true  "Date (YYYY-MM-DD)"
// @Param       refresh  query bool   false "Discard cached state and reload from the backend"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/checklists/{resource}/{date} [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := req.resource.UseCase.Load(ctx, req.scope, checklist.LoadInput{
		Date:  req.date,
		Force: req.refresh,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDayResp(req.resource.Catalog, out))
}

// Toggle godoc
// @Summary     Toggle one checklist item
// @Description Optimistically flips a single item for the authenticated user, materializing its backend record on first interaction.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       resource path string true "Checklist resource" Enums(cafe, marshal)
// @Param       date     path string true "Date (YYYY-MM-DD)"
// @Param       type     path string true "Checklist type" Enums(opening, midday, closing)
// @Param       item     path string true "Catalog item id"
// @Success     200 {object} toggleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "No authenticated user"
// @Failure     409 {object} response.Resp "Toggle already in flight"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/checklists/{resource}/{date}/items/{type}/{item}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := req.resource.UseCase.Toggle(ctx, req.scope, checklist.ToggleInput{
		Date:          req.date,
		ChecklistType: req.checklistType,
		ItemID:        req.itemID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(req.resource.Catalog, req.checklistType, req.itemID, out))
}

// Progress godoc
// @Summary     Get per-type completion progress
// @Description Returns completed/total counts per checklist type for one date.
// @Tags        Checklists
// @Accept      json
// @Produce     json
// @Param       resource path string true "Checklist resource" Enums(cafe, marshal)
// @Param       date     path string true "Date (YYYY-MM-DD)"
// @Success     200 {object} progressResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/checklists/{resource}/{date}/progress [GET]
func (h *handler) Progress(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := req.resource.UseCase.Progress(ctx, req.scope, checklist.ProgressInput{Date: req.date})
	if err != nil {
		h.l.Errorf(ctx, "uc.Progress: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newProgressResp(out))
}
