package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

// validOrderBy whitelists sortable columns for ListProperties.
var validOrderBy = map[string]bool{
	"list_price":     true,
	"close_price":    true,
	"living_area":    true,
	"days_on_market": true,
	"year_built":     true,
	"updated_at":     true,
	"list_date":      true,
}

// ToSQL renders the property query into a data statement, a count
// statement, and the shared positional args.
func (q *PropertyQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var where []string
	args = []any{}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if q.City != nil && *q.City != "" {
		add("lower(city) = lower($%d)", *q.City)
	}
	if q.PostalCode != nil && *q.PostalCode != "" {
		add("postal_code = $%d", *q.PostalCode)
	}
	if q.PriceMin != nil {
		add("list_price >= $%d", *q.PriceMin)
	}
	if q.PriceMax != nil {
		add("list_price <= $%d", *q.PriceMax)
	}
	if q.BedsMin != nil {
		add("beds >= $%d", *q.BedsMin)
	}
	if q.BathsMin != nil {
		add("baths >= $%d", *q.BathsMin)
	}
	if q.LivingAreaMin != nil {
		add("living_area >= $%d", *q.LivingAreaMin)
	}
	if q.LivingAreaMax != nil {
		add("living_area <= $%d", *q.LivingAreaMax)
	}
	if q.YearBuiltMin != nil {
		add("year_built >= $%d", *q.YearBuiltMin)
	}
	if q.SubType != nil && *q.SubType != "" {
		add("property_sub_type = $%d", *q.SubType)
	}
	if len(q.Statuses) > 0 {
		add("standard_status = ANY($%d)", q.Statuses)
	}
	if q.WaterfrontOnly {
		where = append(where, "waterfront = true")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	orderBy := "updated_at"
	direction := "DESC"
	if q.OrderBy != "" {
		col := strings.TrimPrefix(q.OrderBy, "-")
		if validOrderBy[col] {
			orderBy = col
			if !strings.HasPrefix(q.OrderBy, "-") {
				direction = "ASC"
			}
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	dataSQL = fmt.Sprintf(
		"SELECT %s FROM properties%s ORDER BY %s %s LIMIT %d OFFSET %d",
		propertyColumns, whereSQL, orderBy, direction, limit, offset,
	)
	countSQL = "SELECT COUNT(*) FROM properties" + whereSQL

	return dataSQL, countSQL, args
}

// ToSQL renders the candidate query. The bounding box is always
// applied; everything else is optional.
func (q *CandidateQuery) ToSQL() (string, []any) {
	args := []any{q.MinLat, q.MaxLat, q.MinLon, q.MaxLon}
	where := []string{
		"latitude BETWEEN $1 AND $2",
		"longitude BETWEEN $3 AND $4",
	}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if q.PriceMin > 0 {
		add("COALESCE(close_price, list_price) >= $%d", q.PriceMin)
	}
	if q.PriceMax > 0 {
		add("COALESCE(close_price, list_price) <= $%d", q.PriceMax)
	}
	if len(q.Statuses) > 0 {
		add("standard_status = ANY($%d)", q.Statuses)
	}
	if q.SubType != nil && *q.SubType != "" {
		add("property_sub_type = $%d", *q.SubType)
	}
	if q.ExcludeID != "" {
		add("id != $%d", q.ExcludeID)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	sql := fmt.Sprintf(
		"SELECT %s FROM properties WHERE %s ORDER BY updated_at DESC LIMIT %d",
		propertyColumns, strings.Join(where, " AND "), limit,
	)

	return sql, args
}
