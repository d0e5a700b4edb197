package directory

import "go-doctor-directory/internal/domain/entity"

func scenarioDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:           "1",
			Name:         "Dr. Dr. Asha",
			Fees:         "₹500",
			Experience:   "10 Years",
			Specialities: []entity.Specialty{{Name: "Dentist"}},
			InClinic:     true,
			VideoConsult: false,
		},
		{
			ID:           "2",
			Name:         "Dr. Raj",
			Fees:         "₹300",
			Experience:   "5 Years",
			Specialities: []entity.Specialty{{Name: "Cardiologist"}},
			InClinic:     false,
			VideoConsult: true,
		},
	}
}

func directoryDoctors() []entity.Doctor {
	return []entity.Doctor{
		{ID: "a", Name: "Dr. Meera Iyer", Fees: "₹ 700", Experience: "12 Years of experience",
			Specialities: []entity.Specialty{{Name: "Pediatric Cardiologist"}}, VideoConsult: true, InClinic: true},
		{ID: "b", Name: "Dr. Arun Kumar", Fees: "₹1,200", Experience: "25 Years of experience",
			Specialities: []entity.Specialty{{Name: "General Physician"}}, InClinic: true},
		{ID: "c", Name: "Dr. Dr. Kavya Rao", Fees: "₹300", Experience: "3 Years of experience",
			Specialities: []entity.Specialty{{Name: "Dermatologist"}, {Name: "Cosmetologist"}}, VideoConsult: true},
		{ID: "d", Name: "Dr. Sameer Khan", Fees: "", Experience: "",
			Specialities: nil, VideoConsult: true, InClinic: true},
		{ID: "e", Name: "Dr. Kavitha Menon", Fees: "₹700", Experience: "12 Years of experience",
			Specialities: []entity.Specialty{{Name: "Dentist"}}, InClinic: true},
		{ID: "f", Name: "Dr. Karthik", Fees: "free", Experience: "about a decade",
			Specialities: []entity.Specialty{{Name: ""}}, VideoConsult: true},
	}
}

func ids(doctors []entity.Doctor) []string {
	out := make([]string, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, d.ID)
	}
	return out
}
