package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"github.com/nucleus/village-api/internal/database"
)

// =============================================================================
// QUERY RESOLVERS
// =============================================================================

// Query returns the Query type resolver.
func (r *Resolver) Query() *queryResolver {
	return &queryResolver{r}
}

type queryResolver struct{ *Resolver }

// Villages returns every village.
func (r *queryResolver) Villages(ctx context.Context) (*[]*VillageResolver, error) {
	villages, err := r.db.ListVillages(ctx)
	if err != nil {
		return nil, r.fail(ctx, "villages", err)
	}

	result := make([]*VillageResolver, len(villages))
	for i, v := range villages {
		result[i] = mapVillageToGraphQL(v)
	}
	return &result, nil
}

// VillageDetails returns the descriptive projection of one village, or null.
func (r *queryResolver) VillageDetails(ctx context.Context, args struct{ ID graphql.ID }) (*VillageDetailsResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "villageDetails", err)
	}

	d, err := r.db.GetVillageDetails(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "villageDetails", err)
	}
	return mapDetailsToGraphQL(d), nil
}

// =============================================================================
// MUTATION RESOLVERS
// =============================================================================

// Mutation returns the Mutation type resolver.
func (r *Resolver) Mutation() *mutationResolver {
	return &mutationResolver{r}
}

type mutationResolver struct{ *Resolver }

// DeleteVillage deletes a village and echoes its id. A missing row is not an
// error.
func (r *mutationResolver) DeleteVillage(ctx context.Context, args struct{ ID graphql.ID }) (*VillageResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "deleteVillage", err)
	}

	n, err := r.db.DeleteVillage(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, "deleteVillage", err)
	}
	if n == 0 {
		r.logger(ctx).Debug("deleteVillage: no row matched", zap.Int64("id", id))
	}
	return mapVillageToGraphQL(&database.Village{ID: id}), nil
}

type updateVillageArgs struct {
	ID         graphql.ID
	Name       graphql.NullString
	Region     graphql.NullString
	Land       graphql.NullInt
	Latitude   graphql.NullFloat
	Longitude  graphql.NullFloat
	Tags       graphql.NullString
	Img        graphql.NullString
	Population graphql.NullInt
	Age        graphql.NullString
	Gender     graphql.NullString
	GrowthRate graphql.NullFloat
	Urban      graphql.NullBool
}

// updateSet lists the optional arguments in declaration order.
func (a *updateVillageArgs) updateSet() database.UpdateSet {
	return database.UpdateSet{}.
		Add(database.ColName, stringArg(a.Name), a.Name.Set).
		Add(database.ColRegion, stringArg(a.Region), a.Region.Set).
		Add(database.ColLand, intArg(a.Land), a.Land.Set).
		Add(database.ColLatitude, floatArg(a.Latitude), a.Latitude.Set).
		Add(database.ColLongitude, floatArg(a.Longitude), a.Longitude.Set).
		Add(database.ColTags, stringArg(a.Tags), a.Tags.Set).
		Add(database.ColImg, stringArg(a.Img), a.Img.Set).
		Add(database.ColPopulation, intArg(a.Population), a.Population.Set).
		Add(database.ColAge, stringArg(a.Age), a.Age.Set).
		Add(database.ColGender, stringArg(a.Gender), a.Gender.Set).
		Add(database.ColGrowthRate, floatArg(a.GrowthRate), a.GrowthRate.Set).
		Add(database.ColUrban, boolArg(a.Urban), a.Urban.Set)
}

// UpdateVillage writes only the supplied fields and returns the re-read row.
func (r *mutationResolver) UpdateVillage(ctx context.Context, args updateVillageArgs) (*VillageResolver, error) {
	set := args.updateSet()
	if set.Empty() {
		return nil, r.fail(ctx, "updateVillage", errNoFields)
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "updateVillage", err)
	}

	v, err := r.db.UpdateVillage(ctx, id, set)
	if err != nil {
		return nil, r.fail(ctx, "updateVillage", err)
	}
	return mapVillageToGraphQL(v), nil
}

type updateDemographicDataArgs struct {
	ID         graphql.ID
	Population *int32
	Age        *string
	Gender     *string
	GrowthRate *float64
}

// UpdateDemographicData overwrites the four demographic columns and returns
// the re-read row.
func (r *mutationResolver) UpdateDemographicData(ctx context.Context, args updateDemographicDataArgs) (*VillageResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, "updateDemographicData", err)
	}

	v, err := r.db.UpdateDemographics(ctx, id, database.Demographics{
		Population: int64Ptr(args.Population),
		Age:        args.Age,
		Gender:     args.Gender,
		GrowthRate: args.GrowthRate,
	})
	if err != nil {
		return nil, r.fail(ctx, "updateDemographicData", err)
	}
	return mapVillageToGraphQL(v), nil
}

type addVillageArgs struct {
	Name      *string
	Region    *string
	Land      *int32
	Latitude  *float64
	Longitude *float64
	Tags      *string
	Img       *string
}

// AddVillage inserts a village and returns it with the storage-assigned id
// and the demographic defaults.
func (r *mutationResolver) AddVillage(ctx context.Context, args addVillageArgs) (*VillageResolver, error) {
	in := database.NewVillage{
		Name:      args.Name,
		Region:    args.Region,
		Land:      int64Ptr(args.Land),
		Latitude:  args.Latitude,
		Longitude: args.Longitude,
		Tags:      args.Tags,
		Img:       args.Img,
	}

	id, err := r.db.InsertVillage(ctx, in)
	if err != nil {
		return nil, r.fail(ctx, "addVillage", err)
	}

	return mapVillageToGraphQL(&database.Village{
		ID:         id,
		Name:       database.ToNullString(in.Name),
		Region:     database.ToNullString(in.Region),
		Land:       database.ToNullInt64(in.Land),
		Latitude:   database.ToNullFloat64(in.Latitude),
		Longitude:  database.ToNullFloat64(in.Longitude),
		Tags:       database.ToNullString(in.Tags),
		Img:        database.ToNullString(in.Img),
		Population: database.ToNullInt64(ptr(database.DefaultPopulation)),
		Age:        database.ToNullString(ptr(database.DefaultAge)),
		Gender:     database.ToNullString(ptr(database.DefaultGender)),
		GrowthRate: database.ToNullFloat64(ptr(database.DefaultGrowthRate)),
		Urban:      database.NullFlag{Bool: database.DefaultUrban, Valid: true},
	}), nil
}
