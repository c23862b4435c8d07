package dto

import (
	"airbnc/internal/domains/property/model"
	"airbnc/shared/constant"
	gDto "airbnc/shared/dto"
	"airbnc/shared/failure"
	"airbnc/shared/validator"
	"math"
	"net/http"
	"strconv"
	"strings"
)

var sortColumns = map[string]string{
	constant.SortCostPerNight: model.Alias + "." + model.FieldPricePerNight,
	constant.SortPopularity:   model.ColumnPopularity,
}

var sortDirections = map[string]string{
	constant.OrderAscending:  gDto.SortDirAsc,
	constant.OrderDescending: gDto.SortDirDesc,
}

// GetPropertiesRequest holds the listing query string. Empty fields are unset.
type GetPropertiesRequest struct {
	MinPrice     string `query:"minprice"`
	MaxPrice     string `query:"maxprice"`
	PropertyType string `query:"property_type"`
	Sort         string `query:"sort"          validate:"omitempty,oneof=cost_per_night popularity"`
	Order        string `query:"order"         validate:"omitempty,oneof=ascending descending"`

	minPrice *float64
	maxPrice *float64
}

func (g *GetPropertiesRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	g.MinPrice = strings.TrimSpace(query.Get(constant.RequestParamMinPrice))
	g.MaxPrice = strings.TrimSpace(query.Get(constant.RequestParamMaxPrice))
	g.PropertyType = strings.TrimSpace(query.Get(constant.RequestParamPropertyType))
	g.Sort = query.Get(constant.RequestParamSort)
	g.Order = query.Get(constant.RequestParamOrder)
}

// Validate checks prices first, then sort and order.
func (g *GetPropertiesRequest) Validate() error {
	var err error

	if g.minPrice, err = parsePrice(g.MinPrice); err != nil {
		return err
	}

	if g.maxPrice, err = parsePrice(g.MaxPrice); err != nil {
		return err
	}

	return validator.ValidateStruct(g) //nolint:wrapcheck
}

func parsePrice(value string) (*float64, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	price, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, failure.BadRequestFromString(constant.MessageInvalidPrice) // nolint:wrapcheck
	}

	return &price, nil
}

// ToFilter renders the listing predicates. Validate must have succeeded.
func (g *GetPropertiesRequest) ToFilter() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if g.minPrice != nil {
		filter.Add(gDto.Filter{
			ArgName:  constant.RequestParamMinPrice,
			Field:    model.FieldPricePerNight,
			Value:    *g.minPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.Alias,
		})
	}

	if g.maxPrice != nil {
		filter.Add(gDto.Filter{
			ArgName:  constant.RequestParamMaxPrice,
			Field:    model.FieldPricePerNight,
			Value:    *g.maxPrice,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.Alias,
		})
	}

	if g.PropertyType != "" {
		filter.Add(gDto.Filter{
			Field:    model.FieldPropertyType,
			Value:    g.PropertyType,
			Operator: gDto.FilterOperatorEqIgnoreCase,
			Table:    model.Alias,
		})
	}

	return filter
}

// ToOrders maps sort and order onto whitelisted columns, with the property
// id as a stable tie-breaker.
func (g *GetPropertiesRequest) ToOrders() []gDto.OrderBy {
	sort := g.Sort
	if sort == "" {
		sort = constant.DefaultValueSort
	}

	order := g.Order
	if order == "" {
		order = constant.DefaultValueOrder
	}

	return []gDto.OrderBy{
		{Column: sortColumns[sort], SortDir: sortDirections[order]},
		{Column: model.Alias + "." + model.FieldID, SortDir: gDto.SortDirAsc},
	}
}

// CacheKey identifies the normalised query.
func (g *GetPropertiesRequest) CacheKey() string {
	orders := g.ToOrders()

	return strings.Join([]string{
		formatPrice(g.minPrice),
		formatPrice(g.maxPrice),
		strings.ToLower(g.PropertyType),
		orders[0].String(),
	}, "|")
}

func formatPrice(price *float64) string {
	if price == nil {
		return ""
	}

	return strconv.FormatFloat(*price, 'f', -1, 64)
}

type PropertyListItem struct {
	PropertyID    int64   `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	Location      string  `json:"location"`
	CostPerNight  float64 `json:"cost_per_night"`
	PricePerNight float64 `json:"price_per_night"`
	PropertyType  string  `json:"property_type"`
	Host          string  `json:"host"`
	Popularity    int64   `json:"popularity"`
	Image         *string `json:"image"`
}

func (p *PropertyListItem) FromModel(m model.Listing) {
	p.PropertyID = m.PropertyID
	p.PropertyName = m.PropertyName
	p.Location = m.Location
	p.CostPerNight = m.CostPerNight
	p.PricePerNight = m.PricePerNight
	p.PropertyType = m.PropertyType
	p.Host = m.Host
	p.Popularity = m.Popularity
	p.Image = m.Image
}

type GetPropertiesResponse struct {
	Properties []PropertyListItem `json:"properties"`
}

func (g *GetPropertiesResponse) FromModels(models []model.Listing) {
	g.Properties = make([]PropertyListItem, len(models))

	for i, m := range models {
		g.Properties[i].FromModel(m)
	}
}

type PropertyDetail struct {
	PropertyID     int64    `json:"property_id"`
	PropertyName   string   `json:"property_name"`
	Location       string   `json:"location"`
	PropertyType   string   `json:"property_type"`
	PricePerNight  float64  `json:"price_per_night"`
	Description    *string  `json:"description"`
	Host           string   `json:"host"`
	HostAvatar     *string  `json:"host_avatar"`
	FavouriteCount int64    `json:"favourite_count"`
	Images         []string `json:"images"`
	Amenities      []string `json:"amenities"`
	Favourited     *bool    `json:"favourited,omitempty"`
}

func (p *PropertyDetail) FromModel(m model.Detail, images, amenities []string) {
	p.PropertyID = m.PropertyID
	p.PropertyName = m.PropertyName
	p.Location = m.Location
	p.PropertyType = m.PropertyType
	p.PricePerNight = m.PricePerNight
	p.Description = m.Description
	p.Host = m.Host
	p.HostAvatar = m.HostAvatar
	p.FavouriteCount = m.FavouriteCount
	p.Images = nonNil(images)
	p.Amenities = nonNil(amenities)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}

type GetPropertyResponse struct {
	Property PropertyDetail `json:"property"`
}
