package graphql

import (
	"net/http"

	"github.com/evproyectos/aventados-isw-server/internal/pkg/logger"
	nrpkg "github.com/evproyectos/aventados-isw-server/internal/pkg/newrelic"
	"github.com/evproyectos/aventados-isw-server/internal/utils"
	"github.com/evproyectos/aventados-isw-server/services/rides"
	"github.com/graphql-go/graphql"
	"github.com/labstack/echo/v4"
)

// Request is a standard GraphQL POST body
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Handler serves the ride search schema
type Handler struct {
	schema graphql.Schema
}

func NewHandler(rideUC rides.RideUC) (*Handler, error) {
	schema, err := NewSchema(rideUC)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// Serve executes a query. Resolver errors are reported inside the GraphQL result with status 200.
func (h *Handler) Serve(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GraphQL")

	var req Request
	if err := c.Bind(&req); err != nil || req.Query == "" {
		return utils.BadRequestResponse(c, "A GraphQL query is required")
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request().Context(),
	})
	if result.HasErrors() {
		logger.DebugCtx(c.Request().Context(), "GraphQL query returned errors",
			logger.Int("errors", len(result.Errors)))
	}

	return c.JSON(http.StatusOK, result)
}
