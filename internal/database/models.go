// Package database provides the Villages table model and its queries.
package database

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Table and column names of the Villages table, in storage order.
const (
	TableVillages = "Villages"

	ColID         = "id"
	ColName       = "name"
	ColRegion     = "Region"
	ColLand       = "land"
	ColLatitude   = "Latitude"
	ColLongitude  = "Longitude"
	ColTags       = "Tags"
	ColImg        = "img"
	ColPopulation = "population"
	ColAge        = "age"
	ColGender     = "gender"
	ColGrowthRate = "growthRate"
	ColUrban      = "Urban"
)

var villageColumns = []string{
	ColID, ColName, ColRegion, ColLand, ColLatitude, ColLongitude, ColTags, ColImg,
	ColPopulation, ColAge, ColGender, ColGrowthRate, ColUrban,
}

// Village is one row of the Villages table. Every column except id may be NULL.
type Village struct {
	ID         int64           `json:"id"`
	Name       sql.NullString  `json:"name"`
	Region     sql.NullString  `json:"Region"`
	Land       sql.NullInt64   `json:"land"`
	Latitude   sql.NullFloat64 `json:"Latitude"`
	Longitude  sql.NullFloat64 `json:"Longitude"`
	Tags       sql.NullString  `json:"Tags"`
	Img        sql.NullString  `json:"img"`
	Population sql.NullInt64   `json:"population"`
	Age        sql.NullString  `json:"age"`
	Gender     sql.NullString  `json:"gender"`
	GrowthRate sql.NullFloat64 `json:"growthRate"`
	Urban      NullFlag        `json:"Urban"`
}

// VillageDetails is the descriptive projection of a Village.
type VillageDetails struct {
	Name      sql.NullString  `json:"name"`
	Region    sql.NullString  `json:"region"`
	LandArea  sql.NullInt64   `json:"landArea"`
	Latitude  sql.NullFloat64 `json:"latitude"`
	Longitude sql.NullFloat64 `json:"longitude"`
	Tags      sql.NullString  `json:"tags"`
	Img       sql.NullString  `json:"img"`
}

// NewVillage holds the caller-supplied columns of an insert. Nil means NULL.
type NewVillage struct {
	Name      *string
	Region    *string
	Land      *int64
	Latitude  *float64
	Longitude *float64
	Tags      *string
	Img       *string
}

// Defaults written by InsertVillage for the demographic columns.
const (
	DefaultPopulation int64   = 0
	DefaultAge                = ""
	DefaultGender             = ""
	DefaultGrowthRate float64 = 1.0
	DefaultUrban              = true
)

// Demographics is the fixed column set written by UpdateDemographics. Nil
// writes NULL.
type Demographics struct {
	Population *int64
	Age        *string
	Gender     *string
	GrowthRate *float64
}

// ToNullString converts an optional string to sql.NullString.
func ToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// ToNullInt64 converts an optional int64 to sql.NullInt64.
func ToNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// ToNullFloat64 converts an optional float64 to sql.NullFloat64.
func ToNullFloat64(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// NullFlag is a nullable boolean column. Any non-zero integer reads as true,
// so a TINYINT(1) holding 2 or -1 still scans.
type NullFlag struct {
	Bool  bool
	Valid bool
}

// Scan implements sql.Scanner.
func (f *NullFlag) Scan(value interface{}) error {
	f.Bool, f.Valid = false, false
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		f.Bool, f.Valid = v, true
		return nil
	case []byte:
		return f.scanText(string(v))
	case string:
		return f.scanText(v)
	}

	var n sql.NullInt64
	if err := n.Scan(value); err != nil {
		return fmt.Errorf("cannot scan %T into NullFlag: %w", value, err)
	}
	f.Bool, f.Valid = n.Int64 != 0, n.Valid
	return nil
}

func (f *NullFlag) scanText(s string) error {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		f.Bool, f.Valid = n != 0, true
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into NullFlag", s)
	}
	f.Bool, f.Valid = b, true
	return nil
}

// Value implements driver.Valuer.
func (f NullFlag) Value() (driver.Value, error) {
	if !f.Valid {
		return nil, nil
	}
	return f.Bool, nil
}
