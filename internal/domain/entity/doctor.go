package entity

// Specialty is one specialty label attached to a doctor.
type Specialty struct {
	Name string `json:"name"`
}

type Address struct {
	Locality     string `json:"locality"`
	City         string `json:"city"`
	AddressLine1 string `json:"address_line1"`
	Location     string `json:"location"`
	LogoURL      string `json:"logo_url,omitempty"`
}

type Clinic struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// Doctor represents one directory listing fetched from the remote source.
// Records are read-only once fetched.
type Doctor struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	NameInitials string      `json:"name_initials"`
	Photo        string      `json:"photo,omitempty"`
	Introduction string      `json:"doctor_introduction,omitempty"`
	Specialities []Specialty `json:"specialities"`
	Fees         string      `json:"fees"`
	Experience   string      `json:"experience"`
	Languages    []string    `json:"languages"`
	Clinic       Clinic      `json:"clinic"`
	VideoConsult bool        `json:"video_consult"`
	InClinic     bool        `json:"in_clinic"`
}

// SpecialtyNames returns the specialty labels in source order.
func (d *Doctor) SpecialtyNames() []string {
	names := make([]string, 0, len(d.Specialities))
	for _, s := range d.Specialities {
		names = append(names, s.Name)
	}
	return names
}

// SupportsMode reports whether the doctor offers the given consultation mode.
// ConsultationModeNone is supported by everyone.
func (d *Doctor) SupportsMode(mode ConsultationMode) bool {
	switch mode {
	case ConsultationModeVideo:
		return d.VideoConsult
	case ConsultationModeInClinic:
		return d.InClinic
	default:
		return true
	}
}

// SpecialtyCatalog is the fixed list offered by the specialty filter.
var SpecialtyCatalog = []string{
	"General Physician",
	"Dentist",
	"Dermatologist",
	"Paediatrician",
	"Gynaecologist",
	"ENT",
	"Diabetologist",
	"Cardiologist",
	"Physiotherapist",
	"Endocrinologist",
	"Orthopaedic",
	"Ophthalmologist",
	"Gastroenterologist",
	"Pulmonologist",
	"Psychiatrist",
	"Urologist",
	"Dietitian/Nutritionist",
	"Psychologist",
	"Sexologist",
	"Nephrologist",
	"Neurologist",
	"Oncologist",
	"Ayurveda",
	"Homeopath",
}
