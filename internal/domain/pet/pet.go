package pet

import "fmt"

// PetType is the species category shown in the catalog.
type PetType string

const (
	PetTypeDog    PetType = "狗狗"
	PetTypeCat    PetType = "貓咪"
	PetTypeBird   PetType = "鳥類"
	PetTypeRabbit PetType = "兔子"
	PetTypeOther  PetType = "其他"
)

// IsValid returns true if the pet type is recognized.
func (t PetType) IsValid() bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeBird, PetTypeRabbit, PetTypeOther:
		return true
	}
	return false
}

// Gender of a pet.
type Gender string

const (
	GenderMale   Gender = "公"
	GenderFemale Gender = "母"
)

// IsValid returns true if the gender is recognized.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Size is the body-size bucket of a pet.
type Size string

const (
	SizeSmall  Size = "小型"
	SizeMedium Size = "中型"
	SizeLarge  Size = "大型"
)

// IsValid returns true if the size is recognized.
func (s Size) IsValid() bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// AgeGroup is the age bucket used for filtering.
type AgeGroup string

const (
	AgeGroupYoung  AgeGroup = "幼年"
	AgeGroupAdult  AgeGroup = "成年"
	AgeGroupSenior AgeGroup = "老年"
)

// IsValid returns true if the age group is recognized.
func (a AgeGroup) IsValid() bool {
	return a == AgeGroupYoung || a == AgeGroupAdult || a == AgeGroupSenior
}

// Pet is a catalog entry. It is owned by the backend; the client never
// mutates it.
type Pet struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Breed        string   `json:"breed"`
	Age          string   `json:"age"`
	AgeGroup     AgeGroup `json:"age_group"`
	Gender       Gender   `json:"gender"`
	Size         Size     `json:"size"`
	PetType      PetType  `json:"pet_type"`
	Location     string   `json:"location"`
	Distance     string   `json:"distance,omitempty"`
	ImageURL     string   `json:"image_url"`
	Description  string   `json:"description,omitempty"`
	AdoptionFee  float64  `json:"adoption_fee"`
	IsVaccinated bool     `json:"is_vaccinated"`
	IsNeutered   bool     `json:"is_neutered"`
	IsFeatured   bool     `json:"is_featured"`
	Tags         []string `json:"tags"`
}

// Summary renders the one-line card text: "Bella · 黃金獵犬 · 2 歲".
func (p Pet) Summary() string {
	return fmt.Sprintf("%s · %s · %s", p.Name, p.Breed, p.Age)
}

// Story is a happy-ending adoption story shown on the home screen.
type Story struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	PetName  string `json:"pet_name"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url,omitempty"`
	Color    string `json:"color,omitempty"`
}
