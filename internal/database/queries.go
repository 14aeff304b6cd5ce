package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// =============================================================================
// VILLAGE READS
// =============================================================================

// ListVillages returns every row of the Villages table in storage order.
func (c *Client) ListVillages(ctx context.Context) ([]*Village, error) {
	rows, err := c.db.QueryContext(ctx, c.selectVillagesSQL())
	if err != nil {
		return nil, storageErr("list villages", err)
	}
	defer rows.Close()

	villages := []*Village{}
	for rows.Next() {
		v, err := scanVillage(rows)
		if err != nil {
			return nil, storageErr("scan village", err)
		}
		villages = append(villages, v)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list villages", err)
	}
	return villages, nil
}

// GetVillage retrieves a village by id. It returns nil, nil when no row matches.
func (c *Client) GetVillage(ctx context.Context, id int64) (*Village, error) {
	query := c.selectVillagesSQL() + " WHERE " + c.q(ColID) + " = " + c.dialect.Placeholder(1)

	v, err := scanVillage(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get village", err)
	}
	return v, nil
}

// GetVillageDetails retrieves the descriptive projection of a village. It
// returns nil, nil when no row matches.
func (c *Client) GetVillageDetails(ctx context.Context, id int64) (*VillageDetails, error) {
	query := "SELECT " + strings.Join([]string{
		c.q(ColName),
		c.q(ColRegion) + " AS " + c.q("region"),
		c.q(ColLand) + " AS " + c.q("landArea"),
		c.q(ColLatitude) + " AS " + c.q("latitude"),
		c.q(ColLongitude) + " AS " + c.q("longitude"),
		c.q(ColTags) + " AS " + c.q("tags"),
		c.q(ColImg),
	}, ", ") + " FROM " + c.q(TableVillages) + " WHERE " + c.q(ColID) + " = " + c.dialect.Placeholder(1)

	var d VillageDetails
	err := c.db.QueryRowContext(ctx, query, id).Scan(
		&d.Name, &d.Region, &d.LandArea, &d.Latitude, &d.Longitude, &d.Tags, &d.Img,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get village details", err)
	}
	return &d, nil
}

// =============================================================================
// VILLAGE WRITES
// =============================================================================

// InsertVillage inserts a row with the demographic defaults and returns the
// id assigned by the database.
func (c *Client) InsertVillage(ctx context.Context, in NewVillage) (int64, error) {
	cols := []string{
		ColName, ColRegion, ColLand, ColLatitude, ColLongitude, ColTags, ColImg,
		ColPopulation, ColAge, ColGender, ColGrowthRate, ColUrban,
	}
	args := []interface{}{
		ToNullString(in.Name), ToNullString(in.Region), ToNullInt64(in.Land),
		ToNullFloat64(in.Latitude), ToNullFloat64(in.Longitude),
		ToNullString(in.Tags), ToNullString(in.Img),
		DefaultPopulation, DefaultAge, DefaultGender, DefaultGrowthRate, DefaultUrban,
	}

	quoted := make([]string, len(cols))
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = c.q(col)
		placeholders[i] = c.dialect.Placeholder(i + 1)
	}
	query := "INSERT INTO " + c.q(TableVillages) +
		" (" + strings.Join(quoted, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"

	if c.dialect.ReturnsInsertID() {
		var id int64
		if err := c.db.QueryRowContext(ctx, query+" RETURNING "+c.q(ColID), args...).Scan(&id); err != nil {
			return 0, storageErr("insert village", err)
		}
		return id, nil
	}

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, storageErr("insert village", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("read inserted village id", err)
	}
	return id, nil
}

// UpdateVillage applies a partial update and re-reads the row. It returns
// ErrNoFields without touching the database when no field is set, and nil,
// nil when the row is absent after the write.
func (c *Client) UpdateVillage(ctx context.Context, id int64, set UpdateSet) (*Village, error) {
	query, args, err := set.Build(c.dialect, TableVillages, id)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return nil, storageErr("update village", err)
	}
	return c.GetVillage(ctx, id)
}

// UpdateDemographics overwrites population, age, gender and growthRate and
// re-reads the row. Nil fields write NULL.
func (c *Client) UpdateDemographics(ctx context.Context, id int64, d Demographics) (*Village, error) {
	set := UpdateSet{}.
		Add(ColPopulation, ToNullInt64(d.Population), true).
		Add(ColAge, ToNullString(d.Age), true).
		Add(ColGender, ToNullString(d.Gender), true).
		Add(ColGrowthRate, ToNullFloat64(d.GrowthRate), true)

	query, args, err := set.Build(c.dialect, TableVillages, id)
	if err != nil {
		return nil, err
	}
	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return nil, storageErr("update village demographics", err)
	}
	return c.GetVillage(ctx, id)
}

// DeleteVillage deletes a village by id and returns the number of rows removed.
func (c *Client) DeleteVillage(ctx context.Context, id int64) (int64, error) {
	query := "DELETE FROM " + c.q(TableVillages) + " WHERE " + c.q(ColID) + " = " + c.dialect.Placeholder(1)

	res, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, storageErr("delete village", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("delete village", err)
	}
	return n, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (c *Client) q(ident string) string {
	return c.dialect.Quote(ident)
}

func (c *Client) selectVillagesSQL() string {
	cols := make([]string, len(villageColumns))
	for i, col := range villageColumns {
		cols[i] = c.q(col)
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM " + c.q(TableVillages)
}

func scanVillage(row rowScanner) (*Village, error) {
	var v Village
	err := row.Scan(
		&v.ID, &v.Name, &v.Region, &v.Land, &v.Latitude, &v.Longitude, &v.Tags, &v.Img,
		&v.Population, &v.Age, &v.Gender, &v.GrowthRate, &v.Urban,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
