package domain

// Person represents a stored biographical record.
// It is the primary data structure persisted in the JSON store.
type Person struct {
	// Name is the unique record identifier, stored as given (native script preserved).
	// Example: "张三", "Alice Smith"
	Name string `json:"name"`

	// Gender is optional free-form text. Example: "male", "female"
	Gender string `json:"gender,omitempty"`

	// BirthTime is the birth instant, split into calendar fields.
	BirthTime BirthTime `json:"birth_time"`

	// Location is the place of birth.
	Location Location `json:"location"`

	// Timezone is optional free-form text.
	// Example: "Asia/Shanghai", "UTC+8"
	Timezone string `json:"timezone,omitempty"`

	// CreatedAt is the record creation timestamp.
	// Format: "2006-01-02 15:04:05"
	CreatedAt string `json:"created_at"`

	// UpdatedAt is the last modification timestamp, empty until first update.
	UpdatedAt string `json:"updated_at,omitempty"`
}

// BirthTime holds the calendar components of a birth instant.
type BirthTime struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Day    int `json:"day"`
	Hour   int `json:"hour"`
	Minute int `json:"minute"`

	// DateTimeStr is the rendered form of the fields above.
	// Format: "2006-01-02 15:04"
	DateTimeStr string `json:"datetime_str"`
}

// Location is a birth place with coordinates.
type Location struct {
	// City is the human-readable place name. Example: "北京"
	City string `json:"city"`

	// Latitude in decimal degrees, -90 to 90.
	Latitude float64 `json:"latitude"`

	// Longitude in decimal degrees, -180 to 180.
	Longitude float64 `json:"longitude"`
}

// JSON field name constants for consistent field references in tool schemas and tests.
const (
	PersonFieldName      = "name"
	PersonFieldGender    = "gender"
	PersonFieldBirthTime = "birth_time"
	PersonFieldLocation  = "location"
	PersonFieldTimezone  = "timezone"
	PersonFieldCreatedAt = "created_at"
	PersonFieldUpdatedAt = "updated_at"
)

// Clone returns a deep copy of the person.
// Store snapshots hand out clones so callers can never alias store-owned memory.
func (p *Person) Clone() *Person {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}
