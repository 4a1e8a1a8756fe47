package pet

import (
	"fmt"
	"net/url"
	"slices"
)

// Sentinel option values meaning "no constraint" for a filter dimension.
const (
	All         = "全部"
	DefaultSort = "預設"
)

// SortByDistance orders results nearest first.
const SortByDistance = "距離由近到遠"

// Dimension names a filter the explore screen exposes.
type Dimension string

const (
	DimLocation Dimension = "location"
	DimAge      Dimension = "age"
	DimSize     Dimension = "size"
	DimGender   Dimension = "gender"
	DimType     Dimension = "pet_type"
	DimSort     Dimension = "sort"
)

// Options lists the selectable values per dimension. The first entry is the
// dimension's sentinel.
var Options = map[Dimension][]string{
	DimLocation: {All, "台北市", "新北市", "桃園市", "台中市", "台南市", "高雄市"},
	DimAge:      {All, string(AgeGroupYoung), string(AgeGroupAdult), string(AgeGroupSenior)},
	DimSize:     {All, string(SizeSmall), string(SizeMedium), string(SizeLarge)},
	DimGender:   {All, string(GenderMale), string(GenderFemale)},
	DimType:     {All, string(PetTypeDog), string(PetTypeCat), string(PetTypeBird), string(PetTypeRabbit), string(PetTypeOther)},
	DimSort:     {DefaultSort, SortByDistance},
}

// Filters is the query applied to GET /pets. Zero values and sentinel values
// are both treated as unconstrained.
type Filters struct {
	Location string
	AgeGroup string
	Size     string
	Gender   string
	PetType  string
	Sort     string
}

// DefaultFilters returns every dimension set to its sentinel.
func DefaultFilters() Filters {
	return Filters{
		Location: All,
		AgeGroup: All,
		Size:     All,
		Gender:   All,
		PetType:  All,
		Sort:     DefaultSort,
	}
}

// Query builds the query string parameters, omitting unconstrained values.
func (f Filters) Query() url.Values {
	q := url.Values{}
	add := func(key, value string) {
		if isConstrained(value) {
			q.Set(key, value)
		}
	}
	add("location", f.Location)
	add("age_group", f.AgeGroup)
	add("size", f.Size)
	add("gender", f.Gender)
	add("pet_type", f.PetType)
	add("sort", f.Sort)
	return q
}

// IsDefault reports whether no dimension constrains the result.
func (f Filters) IsDefault() bool {
	return len(f.Query()) == 0
}

// Get returns the current value of a dimension.
func (f Filters) Get(dim Dimension) string {
	switch dim {
	case DimLocation:
		return f.Location
	case DimAge:
		return f.AgeGroup
	case DimSize:
		return f.Size
	case DimGender:
		return f.Gender
	case DimType:
		return f.PetType
	case DimSort:
		return f.Sort
	}
	return ""
}

// With returns a copy of f with dim set to value. The value must be one of
// the dimension's options.
func (f Filters) With(dim Dimension, value string) (Filters, error) {
	opts, ok := Options[dim]
	if !ok {
		return f, fmt.Errorf("unknown filter dimension: %s", dim)
	}
	if !slices.Contains(opts, value) {
		return f, fmt.Errorf("invalid %s option: %q", dim, value)
	}

	switch dim {
	case DimLocation:
		f.Location = value
	case DimAge:
		f.AgeGroup = value
	case DimSize:
		f.Size = value
	case DimGender:
		f.Gender = value
	case DimType:
		f.PetType = value
	case DimSort:
		f.Sort = value
	}
	return f, nil
}

func isConstrained(v string) bool {
	return v != "" && v != All && v != DefaultSort
}
