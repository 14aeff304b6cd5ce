package graph

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"github.com/nucleus/village-api/internal/database"
)

// VillageResolver resolves the Village type.
type VillageResolver struct {
	v *database.Village
}

func (r *VillageResolver) ID() graphql.ID {
	return graphql.ID(strconv.FormatInt(r.v.ID, 10))
}

func (r *VillageResolver) Name() *string { return nullableStringPtr(r.v.Name) }
func (r *VillageResolver) Region() *string { return nullableStringPtr(r.v.Region) }
func (r *VillageResolver) Land() (*int32, error) { return nullableInt32Ptr("land", r.v.Land) }
func (r *VillageResolver) Latitude() *float64 { return nullableFloatPtr(r.v.Latitude) }
func (r *VillageResolver) Longitude() *float64 { return nullableFloatPtr(r.v.Longitude) }
func (r *VillageResolver) Tags() *string { return nullableStringPtr(r.v.Tags) }
func (r *VillageResolver) Img() *string { return nullableStringPtr(r.v.Img) }
func (r *VillageResolver) Population() (*int32, error) {
	return nullableInt32Ptr("population", r.v.Population)
}
func (r *VillageResolver) Age() *string { return nullableStringPtr(r.v.Age) }
func (r *VillageResolver) Gender() *string { return nullableStringPtr(r.v.Gender) }
func (r *VillageResolver) GrowthRate() *float64 { return nullableFloatPtr(r.v.GrowthRate) }
func (r *VillageResolver) Urban() *bool { return nullableBoolPtr(r.v.Urban) }

// VillageDetailsResolver resolves the VillageDetails type.
type VillageDetailsResolver struct {
	d *database.VillageDetails
}

func (r *VillageDetailsResolver) Name() *string { return nullableStringPtr(r.d.Name) }
func (r *VillageDetailsResolver) Region() *string { return nullableStringPtr(r.d.Region) }
func (r *VillageDetailsResolver) LandArea() (*int32, error) {
	return nullableInt32Ptr("landArea", r.d.LandArea)
}
func (r *VillageDetailsResolver) Latitude() *float64 { return nullableFloatPtr(r.d.Latitude) }
func (r *VillageDetailsResolver) Longitude() *float64 { return nullableFloatPtr(r.d.Longitude) }
func (r *VillageDetailsResolver) Tags() *string { return nullableStringPtr(r.d.Tags) }
func (r *VillageDetailsResolver) Img() *string { return nullableStringPtr(r.d.Img) }

// =============================================================================
// HELPERS
// =============================================================================

func mapVillageToGraphQL(v *database.Village) *VillageResolver {
	if v == nil {
		return nil
	}
	return &VillageResolver{v: v}
}

func mapDetailsToGraphQL(d *database.VillageDetails) *VillageDetailsResolver {
	if d == nil {
		return nil
	}
	return &VillageDetailsResolver{d: d}
}

func nullableStringPtr(s sql.NullString) *string {
	if s.Valid {
		return &s.String
	}
	return nil
}

// nullableInt32Ptr narrows a stored integer to GraphQL Int. Values outside
// the 32-bit range fail the field instead of wrapping.
func nullableInt32Ptr(field string, n sql.NullInt64) (*int32, error) {
	if !n.Valid {
		return nil, nil
	}
	if n.Int64 < math.MinInt32 || n.Int64 > math.MaxInt32 {
		return nil, fmt.Errorf("%s value %d does not fit in Int", field, n.Int64)
	}
	v := int32(n.Int64)
	return &v, nil
}

func nullableFloatPtr(f sql.NullFloat64) *float64 {
	if f.Valid {
		return &f.Float64
	}
	return nil
}

func nullableBoolPtr(b database.NullFlag) *bool {
	if b.Valid {
		return &b.Bool
	}
	return nil
}

// Argument conversions from graph-gophers nullable inputs to storage values.
// A nil result binds SQL NULL.

func stringArg(v graphql.NullString) interface{} {
	if v.Value == nil {
		return nil
	}
	return *v.Value
}

func intArg(v graphql.NullInt) interface{} {
	if v.Value == nil {
		return nil
	}
	return int64(*v.Value)
}

func floatArg(v graphql.NullFloat) interface{} {
	if v.Value == nil {
		return nil
	}
	return *v.Value
}

func boolArg(v graphql.NullBool) interface{} {
	if v.Value == nil {
		return nil
	}
	return *v.Value
}

func ptr[T any](v T) *T { return &v }

func int64Ptr(v *int32) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
