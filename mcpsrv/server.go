package mcpsrv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/cartui/catalog"
	"github.com/qyinm/cartui/dealer"
	"github.com/qyinm/cartui/mcpsrv/dto"
	"github.com/qyinm/cartui/types"
	log "github.com/sirupsen/logrus"
)

type catalogListArgs struct {
	Query    string   `json:"query,omitempty" jsonschema:"Optional make/model search, case-insensitive"`
	MaxPrice *float64 `json:"max_price,omitempty" jsonschema:"Optional inclusive price ceiling"`
	Page     int      `json:"page,omitempty" jsonschema:"Optional 1-based page number"`
}

type carGetDetailArgs struct {
	ID string `json:"id" jsonschema:"Car id"`
}

type catalogListOutput struct {
	Query     string    `json:"query"`
	MaxPrice  *float64  `json:"max_price,omitempty"`
	Page      int       `json:"page"`
	PageCount int       `json:"page_count"`
	Total     int       `json:"total"`
	Items     []dto.Car `json:"items"`
}

type carGetDetailOutput struct {
	Item dto.CarDetail `json:"item"`
}

func NewServer(source types.CarSource, version string) *mcp.Server {
	if strings.TrimSpace(version) == "" {
		version = "dev"
	}

	server := mcp.NewServer(&mcp.Implementation{Name: "cartui", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog_list",
		Description: fmt.Sprintf("List cars sorted by ascending price, %d per page, optionally filtered by make/model and a price ceiling.", catalog.PageSize),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args catalogListArgs) (*mcp.CallToolResult, catalogListOutput, error) {
		return catalogListHandler(ctx, req, args, source)
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "car_get_detail",
		Description: "Get the full record for one car by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args carGetDetailArgs) (*mcp.CallToolResult, carGetDetailOutput, error) {
		return carGetDetailHandler(ctx, req, args, source)
	})

	return server
}

func catalogListHandler(ctx context.Context, _ *mcp.CallToolRequest, args catalogListArgs, source types.CarSource) (*mcp.CallToolResult, catalogListOutput, error) {
	page := args.Page
	if page == 0 {
		page = 1
	}
	if page < 0 {
		return errorToolResult("page must be positive"), catalogListOutput{}, nil
	}
	if args.MaxPrice != nil && *args.MaxPrice < 0 {
		return errorToolResult("max_price must not be negative"), catalogListOutput{}, nil
	}

	cars, err := source.GetCatalog(ctx)
	if err != nil {
		log.WithError(err).Warn("catalog_list: upstream failure")
		return errorToolResult(failureMessage(err, dealer.MsgCatalogFailed)), catalogListOutput{}, nil
	}

	// Each call is stateless, so both predicates apply together.
	state := catalog.NewState(cars, catalog.Combined)
	if args.MaxPrice != nil {
		state.SetMaxPrice(*args.MaxPrice)
	}
	state.Search(strings.TrimSpace(args.Query))

	if count := state.PageCount(); count > 0 && page > count {
		return errorToolResult(fmt.Sprintf("page %d out of range; page_count is %d", page, count)), catalogListOutput{}, nil
	}
	state.SetPage(page)

	return nil, catalogListOutput{
		Query:     args.Query,
		MaxPrice:  args.MaxPrice,
		Page:      state.Page(),
		PageCount: state.PageCount(),
		Total:     state.Total(),
		Items:     dto.FromCars(state.PageItems()),
	}, nil
}

func carGetDetailHandler(ctx context.Context, _ *mcp.CallToolRequest, args carGetDetailArgs, source types.CarSource) (*mcp.CallToolResult, carGetDetailOutput, error) {
	id := strings.TrimSpace(args.ID)
	if id == "" {
		return errorToolResult("id is required"), carGetDetailOutput{}, nil
	}

	detail, err := source.GetCarDetail(ctx, id)
	if err != nil {
		log.WithError(err).WithField("id", id).Warn("car_get_detail: upstream failure")
		return errorToolResult(failureMessage(err, dealer.MsgDetailFailed)), carGetDetailOutput{}, nil
	}

	return nil, carGetDetailOutput{Item: dto.FromCarDetail(detail)}, nil
}

// failureMessage returns the FetchError message when err carries one, or
// fallback otherwise.
func failureMessage(err error, fallback string) string {
	var fe *dealer.FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return fallback
}

func errorToolResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
	}
}
