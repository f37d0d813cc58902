package server

import (
	"bytes"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/grid/internal/engine/sheet"
	"go.trai.ch/zerr"
)

// Controller serves a single sheet. Requests are serialized on a mutex.
type Controller struct {
	mu     sync.Mutex
	store  *sheet.Store
	logger ports.Logger
}

// CellResponse is the JSON form of a cell.
type CellResponse struct {
	Cell       string   `json:"cell"`
	Text       string   `json:"text"`
	Value      string   `json:"value"`
	Kind       string   `json:"kind"`
	References []string `json:"references"`
	Dependents []string `json:"dependents"`
}

// CellListResponse is the JSON form of every non-empty cell.
type CellListResponse struct {
	Cells []CellResponse `json:"cells"`
}

type cellParams struct {
	Cell string `uri:"cell" binding:"required"`
}

type setCellRequest struct {
	Text *string `json:"text" binding:"required"`
}

// NewController creates a Controller over store.
func NewController(store *sheet.Store, log ports.Logger) *Controller {
	return &Controller{store: store, logger: log}
}

// ListCellsAction responds with every non-empty cell in row-major order.
func (api *Controller) ListCellsAction(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	response := CellListResponse{Cells: []CellResponse{}}
	for pos, cell := range api.store.Cells() {
		response.Cells = append(response.Cells, api.cellResponse(pos, cell))
	}
	c.JSON(http.StatusOK, response)
}

// GetCellAction responds with one cell, or 404 when it holds nothing.
func (api *Controller) GetCellAction(c *gin.Context) {
	pos, err := bindPosition(c)
	if err != nil {
		api.fail(c, err)
		return
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	cell, err := api.store.GetCell(pos)
	if err != nil {
		api.fail(c, err)
		return
	}
	if cell.IsEmpty() {
		c.JSON(http.StatusNotFound, gin.H{"error": "cell is empty", "cell": pos.String()})
		return
	}
	c.JSON(http.StatusOK, api.cellResponse(pos, cell))
}

// SetCellAction stores the request text in a cell.
func (api *Controller) SetCellAction(c *gin.Context) {
	pos, err := bindPosition(c)
	if err != nil {
		api.fail(c, err)
		return
	}

	var request setCellRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	if err := api.store.SetCell(pos, *request.Text); err != nil {
		api.fail(c, err)
		return
	}
	cell, _ := api.store.GetCell(pos)
	c.JSON(http.StatusOK, api.cellResponse(pos, cell))
}

// ClearCellAction empties a cell.
func (api *Controller) ClearCellAction(c *gin.Context) {
	pos, err := bindPosition(c)
	if err != nil {
		api.fail(c, err)
		return
	}

	api.mu.Lock()
	defer api.mu.Unlock()

	if err := api.store.ClearCell(pos); err != nil {
		api.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PrintAction responds with the printed table as plain text.
func (api *Controller) PrintAction(c *gin.Context) {
	api.mu.Lock()
	defer api.mu.Unlock()

	var buf bytes.Buffer
	var err error
	switch mode := c.DefaultQuery("mode", "values"); mode {
	case "values":
		err = api.store.PrintValues(&buf)
	case "texts":
		err = api.store.PrintTexts(&buf)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown print mode", "mode": mode})
		return
	}
	if err != nil {
		api.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (api *Controller) cellResponse(pos domain.Position, cell *sheet.Cell) CellResponse {
	value := cell.Value()
	return CellResponse{
		Cell:       pos.String(),
		Text:       cell.Text(),
		Value:      value.String(),
		Kind:       value.Kind().String(),
		References: labels(cell.ReferencedCells()),
		Dependents: labels(api.store.Dependents(pos)),
	}
}

func (api *Controller) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && api.logger != nil {
		api.logger.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPosition):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFormulaSyntax):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCircularDependency):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bindPosition(c *gin.Context) (domain.Position, error) {
	var params cellParams
	if err := c.ShouldBindUri(&params); err != nil {
		return domain.PositionNone, zerr.Wrap(domain.ErrInvalidPosition, err.Error())
	}
	pos := domain.ParsePosition(params.Cell)
	if pos == domain.PositionNone {
		err := zerr.Wrap(domain.ErrInvalidPosition, "invalid cell label")
		return pos, zerr.With(err, "cell", params.Cell)
	}
	return pos, nil
}

func labels(positions []domain.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.String()
	}
	return out
}
