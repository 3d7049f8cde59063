package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"survey-analyzer/internal/engine"
	"survey-analyzer/internal/models"
)

// Handler exposes the query engine over JSON. It shares the same
// table, catalog and subset store as the CLI commands.
type Handler struct {
	table   *engine.Table
	catalog *engine.Catalog
	subsets *engine.SubsetStore
	topN    int
}

func NewHandler(table *engine.Table, catalog *engine.Catalog, subsets *engine.SubsetStore, topN int) *Handler {
	return &Handler{table: table, catalog: catalog, subsets: subsets, topN: topN}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/structure", h.GetStructure)
	api.GET("/search", h.SearchQuestions)
	api.GET("/questions/:name/options", h.SearchOptions)
	api.GET("/distribution/:name", h.GetDistribution)
	api.POST("/subset", h.CreateSubset)
	api.DELETE("/subset", h.ClearSubset)
}

func (h *Handler) GetStructure(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	questions := h.catalog.List(limit)

	infos := make([]models.QuestionInfo, 0, len(questions))
	for _, q := range questions {
		infos = append(infos, models.QuestionInfo{
			Name:         q.Name,
			Type:         string(q.Type),
			UniqueValues: len(q.Options),
			Responses:    q.Responses,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"questions": infos,
		"total":     h.catalog.Len(),
	})
}

func (h *Handler) SearchQuestions(c echo.Context) error {
	keyword := c.QueryParam("q")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}

	matches := h.catalog.Search(keyword)
	infos := make([]models.QuestionInfo, 0, len(matches))
	for _, q := range matches {
		infos = append(infos, models.QuestionInfo{
			Name:         q.Name,
			Type:         string(q.Type),
			UniqueValues: len(q.Options),
			Responses:    q.Responses,
		})
	}
	return c.JSON(http.StatusOK, infos)
}

func (h *Handler) SearchOptions(c echo.Context) error {
	options, err := h.catalog.SearchOptions(c.Param("name"), c.QueryParam("q"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"question": c.Param("name"),
		"options":  options,
	})
}

func (h *Handler) GetDistribution(c echo.Context) error {
	top, err := strconv.Atoi(c.QueryParam("top"))
	if err != nil || top < 0 {
		top = h.topN
	}

	var sub *engine.Subset
	if c.QueryParam("subset") == "true" {
		sub, err = h.subsets.Get()
		if err != nil {
			return httpError(err)
		}
	}

	result, err := engine.Distribution(h.table, h.catalog, c.Param("name"), sub, top)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, result)
}

type subsetRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Save     bool   `json:"save"`
}

func (h *Handler) CreateSubset(c echo.Context) error {
	var req subsetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	sub, err := engine.Filter(h.table, h.catalog, req.Question, req.Answer)
	if err != nil {
		return httpError(err)
	}
	if req.Save {
		h.subsets.Save(sub)
	}

	return c.JSON(http.StatusOK, models.SubsetSummary{
		Question:  sub.Question,
		Answer:    sub.Answer,
		Rows:      sub.Len(),
		TotalRows: h.table.Rows(),
		Saved:     req.Save,
	})
}

func (h *Handler) ClearSubset(c echo.Context) error {
	h.subsets.Clear()
	return c.NoContent(http.StatusNoContent)
}

// httpError maps engine errors onto HTTP status codes.
func httpError(err error) error {
	var unknown *engine.UnknownQuestionError
	switch {
	case errors.As(err, &unknown):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrNoActiveSubset):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return err
	}
}
