package clinics

import "context"

// Field names in output column order.
const (
	FieldArea              = "area"
	FieldName              = "name"
	FieldAddress           = "address"
	FieldTel               = "tel"
	FieldSite              = "site"
	FieldHours             = "hours"
	FieldDay               = "day"
	FieldReserveLimitation = "reserve_limitation"
	FieldDiseaseLimitation = "disease_limitation"
)

// Fields returns the record field names in output column order.
func Fields() []string {
	return []string{
		FieldArea,
		FieldName,
		FieldAddress,
		FieldTel,
		FieldSite,
		FieldHours,
		FieldDay,
		FieldReserveLimitation,
		FieldDiseaseLimitation,
	}
}

// Record is one clinic listing. An empty string means the listing had no
// element for that field. Records are passed by value and never modified
// after extraction.
type Record struct {
	Area              string `json:"area"`
	Name              string `json:"name"`
	Address           string `json:"address"`
	Tel               string `json:"tel"`
	Site              string `json:"site"`
	Hours             string `json:"hours"`
	Day               string `json:"day"`
	ReserveLimitation string `json:"reserveLimitation"`
	DiseaseLimitation string `json:"diseaseLimitation"`
}

// Values returns the field values in the order given by Fields.
func (r Record) Values() []string {
	return []string{
		r.Area,
		r.Name,
		r.Address,
		r.Tel,
		r.Site,
		r.Hours,
		r.Day,
		r.ReserveLimitation,
		r.DiseaseLimitation,
	}
}

// RecordFromValues builds a Record from values in Fields order.
// Returns EINVALID if the number of values does not match.
func RecordFromValues(values []string) (Record, error) {
	if len(values) != len(Fields()) {
		return Record{}, Errorf(EINVALID, "record has %d values, want %d", len(values), len(Fields()))
	}
	return Record{
		Area:              values[0],
		Name:              values[1],
		Address:           values[2],
		Tel:               values[3],
		Site:              values[4],
		Hours:             values[5],
		Day:               values[6],
		ReserveLimitation: values[7],
		DiseaseLimitation: values[8],
	}, nil
}

// RecordWriter serializes a complete, ordered sequence of records.
type RecordWriter interface {
	WriteRecords(ctx context.Context, records []Record) error
}
