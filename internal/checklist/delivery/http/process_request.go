package http

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"jumpnjoy-ops/internal/middleware"
	"jumpnjoy-ops/internal/model"
)

var errUnknownResource = errors.New("unknown checklist resource")

type dayReq struct {
	resource Resource
	scope    model.Scope
	date     string
	refresh  bool
}

type toggleReq struct {
	resource      Resource
	scope         model.Scope
	date          string
	checklistType string
	itemID        string
}

func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	res, err := h.lookupResource(c)
	if err != nil {
		return dayReq{}, err
	}
	return dayReq{
		resource: res,
		scope:    middleware.ScopeFromContext(c),
		date:     c.Param("date"),
		refresh:  c.Query("refresh") == "true",
	}, nil
}

func (h *handler) processToggleReq(c *gin.Context) (toggleReq, error) {
	res, err := h.lookupResource(c)
	if err != nil {
		return toggleReq{}, err
	}
	return toggleReq{
		resource:      res,
		scope:         middleware.ScopeFromContext(c),
		date:          c.Param("date"),
		checklistType: c.Param("type"),
		itemID:        c.Param("item"),
	}, nil
}

func (h *handler) lookupResource(c *gin.Context) (Resource, error) {
	name := c.Param("resource")
	res, ok := h.resources[name]
	if !ok {
		return Resource{}, fmt.Errorf("%q: %w", name, errUnknownResource)
	}
	return res, nil
}
