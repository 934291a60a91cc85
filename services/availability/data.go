package availability

// doctorSeed is the fixed per-hospital doctor roster. Doctor identifiers are
// not part of the seed; they are regenerated on every request.
type doctorSeed struct {
	Name       string
	Experience int
	Rating     float64
	Fee        int
}

type hospitalSeed struct {
	HospitalID string
	Name       string
	Address    string
	DistanceKm float64
	Rating     float64
	Doctors    []doctorSeed
}

// hospitalDirectory maps a specialist id to its fixed hospital listing.
// Stands in for a real provider directory API.
var hospitalDirectory = map[string][]hospitalSeed{
	"cardiologist": {
		{
			HospitalID: "hosp_001",
			Name:       "Apollo Heart Institute",
			Address:    "Jubilee Hills, Hyderabad",
			DistanceKm: 2.5,
			Rating:     4.8,
			Doctors: []doctorSeed{
				{Name: "Dr. Rajesh Kumar", Experience: 15, Rating: 4.9, Fee: 800},
				{Name: "Dr. Priya Sharma", Experience: 12, Rating: 4.7, Fee: 700},
			},
		},
		{
			HospitalID: "hosp_002",
			Name:       "Care Hospitals",
			Address:    "Banjara Hills, Hyderabad",
			DistanceKm: 4.2,
			Rating:     4.6,
			Doctors: []doctorSeed{
				{Name: "Dr. Suresh Reddy", Experience: 20, Rating: 4.8, Fee: 1000},
				{Name: "Dr. Anita Desai", Experience: 8, Rating: 4.5, Fee: 600},
			},
		},
		{
			HospitalID: "hosp_003",
			Name:       "Yashoda Hospitals",
			Address:    "Somajiguda, Hyderabad",
			DistanceKm: 5.8,
			Rating:     4.5,
			Doctors: []doctorSeed{
				{Name: "Dr. Venkat Rao", Experience: 18, Rating: 4.6, Fee: 750},
			},
		},
	},
	"dermatologist": {
		{
			HospitalID: "hosp_004",
			Name:       "Kaya Skin Clinic",
			Address:    "Madhapur, Hyderabad",
			DistanceKm: 3.1,
			Rating:     4.7,
			Doctors: []doctorSeed{
				{Name: "Dr. Meera Nair", Experience: 10, Rating: 4.8, Fee: 500},
				{Name: "Dr. Arun Patel", Experience: 7, Rating: 4.5, Fee: 400},
			},
		},
		{
			HospitalID: "hosp_005",
			Name:       "Oliva Skin & Hair Clinic",
			Address:    "Gachibowli, Hyderabad",
			DistanceKm: 6.0,
			Rating:     4.4,
			Doctors: []doctorSeed{
				{Name: "Dr. Sneha Gupta", Experience: 12, Rating: 4.6, Fee: 600},
			},
		},
	},
	"orthopedic": {
		{
			HospitalID: "hosp_006",
			Name:       "Continental Hospitals",
			Address:    "Gachibowli, Hyderabad",
			DistanceKm: 5.5,
			Rating:     4.7,
			Doctors: []doctorSeed{
				{Name: "Dr. Ramesh Babu", Experience: 22, Rating: 4.9, Fee: 900},
				{Name: "Dr. Kavitha Reddy", Experience: 14, Rating: 4.6, Fee: 700},
			},
		},
		{
			HospitalID: "hosp_007",
			Name:       "KIMS Hospital",
			Address:    "Secunderabad, Hyderabad",
			DistanceKm: 8.2,
			Rating:     4.5,
			Doctors: []doctorSeed{
				{Name: "Dr. Srinivas Rao", Experience: 16, Rating: 4.7, Fee: 800},
			},
		},
	},
	"neurologist": {
		{
			HospitalID: "hosp_008",
			Name:       "NIMS Hospital",
			Address:    "Punjagutta, Hyderabad",
			DistanceKm: 4.0,
			Rating:     4.8,
			Doctors: []doctorSeed{
				{Name: "Dr. Lakshmi Prasad", Experience: 25, Rating: 4.9, Fee: 1200},
				{Name: "Dr. Mohan Krishna", Experience: 15, Rating: 4.7, Fee: 800},
			},
		},
	},
	"gastroenterologist": {
		{
			HospitalID: "hosp_009",
			Name:       "Asian Institute of Gastroenterology",
			Address:    "Somajiguda, Hyderabad",
			DistanceKm: 5.0,
			Rating:     4.9,
			Doctors: []doctorSeed{
				{Name: "Dr. Nageshwar Reddy", Experience: 30, Rating: 5.0, Fee: 1500},
				{Name: "Dr. Manu Tandan", Experience: 18, Rating: 4.8, Fee: 1000},
			},
		},
	},
	"pulmonologist": {
		{
			HospitalID: "hosp_010",
			Name:       "Chest Hospital",
			Address:    "Erragadda, Hyderabad",
			DistanceKm: 7.5,
			Rating:     4.4,
			Doctors: []doctorSeed{
				{Name: "Dr. Ravi Shankar", Experience: 20, Rating: 4.6, Fee: 600},
				{Name: "Dr. Sunitha Rani", Experience: 12, Rating: 4.5, Fee: 500},
			},
		},
	},
	"ophthalmologist": {
		{
			HospitalID: "hosp_011",
			Name:       "LV Prasad Eye Institute",
			Address:    "Banjara Hills, Hyderabad",
			DistanceKm: 4.5,
			Rating:     4.9,
			Doctors: []doctorSeed{
				{Name: "Dr. Gullapalli Rao", Experience: 28, Rating: 4.9, Fee: 800},
				{Name: "Dr. Prashant Garg", Experience: 20, Rating: 4.8, Fee: 700},
			},
		},
	},
	"ent_specialist": {
		{
			HospitalID: "hosp_012",
			Name:       "Yashoda ENT Hospital",
			Address:    "Malakpet, Hyderabad",
			DistanceKm: 6.8,
			Rating:     4.5,
			Doctors: []doctorSeed{
				{Name: "Dr. Sanjay Kumar", Experience: 15, Rating: 4.6, Fee: 500},
				{Name: "Dr. Rekha Sharma", Experience: 10, Rating: 4.4, Fee: 400},
			},
		},
	},
	"psychiatrist": {
		{
			HospitalID: "hosp_013",
			Name:       "Institute of Mental Health",
			Address:    "Erragadda, Hyderabad",
			DistanceKm: 7.0,
			Rating:     4.3,
			Doctors: []doctorSeed{
				{Name: "Dr. Vijay Kumar", Experience: 18, Rating: 4.5, Fee: 700},
				{Name: "Dr. Padma Rao", Experience: 22, Rating: 4.7, Fee: 900},
			},
		},
	},
	"general_physician": {
		{
			HospitalID: "hosp_014",
			Name:       "Apollo Clinic",
			Address:    "Kukatpally, Hyderabad",
			DistanceKm: 3.0,
			Rating:     4.6,
			Doctors: []doctorSeed{
				{Name: "Dr. Ramana Murthy", Experience: 20, Rating: 4.7, Fee: 400},
				{Name: "Dr. Swathi Reddy", Experience: 8, Rating: 4.5, Fee: 300},
			},
		},
		{
			HospitalID: "hosp_015",
			Name:       "Max Healthcare",
			Address:    "Madhapur, Hyderabad",
			DistanceKm: 2.8,
			Rating:     4.5,
			Doctors: []doctorSeed{
				{Name: "Dr. Kiran Kumar", Experience: 12, Rating: 4.6, Fee: 350},
			},
		},
	},
}
