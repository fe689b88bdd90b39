package domain

// Enumerated value lists served to the frontend pickers. These mirror the
// Postgres enum types in migrations/001_init.sql; the upsert path does not
// validate against them (the database constraints do).

var Countries = []string{
	"Argentina",
	"Australia",
	"Brazil",
	"Canada",
	"China",
	"Colombia",
	"Egypt",
	"Ethiopia",
	"France",
	"Germany",
	"Ghana",
	"India",
	"Indonesia",
	"Italy",
	"Japan",
	"Kenya",
	"Mexico",
	"Morocco",
	"Netherlands",
	"Nigeria",
	"Pakistan",
	"Philippines",
	"Poland",
	"Portugal",
	"South Africa",
	"South Korea",
	"Spain",
	"Turkey",
	"Ukraine",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Vietnam",
}

var Languages = []string{
	"Arabic",
	"Bengali",
	"Chinese",
	"Dutch",
	"English",
	"French",
	"German",
	"Hindi",
	"Indonesian",
	"Italian",
	"Japanese",
	"Korean",
	"Polish",
	"Portuguese",
	"Russian",
	"Spanish",
	"Swahili",
	"Turkish",
	"Ukrainian",
	"Urdu",
	"Vietnamese",
}

var CurrentStatuses = []string{
	"High School Student",
	"Undergraduate Student",
	"Graduate Student",
	"PhD Candidate",
	"Recent Graduate",
	"Working Professional",
	"Career Break",
}

var JobRoles = []string{
	"Software Engineer",
	"Data Scientist",
	"Researcher",
	"Doctor",
	"Nurse",
	"Teacher",
	"Lawyer",
	"Accountant",
	"Mechanical Engineer",
	"Civil Engineer",
	"Electrical Engineer",
	"Designer",
	"Product Manager",
	"Marketing Specialist",
	"Entrepreneur",
	"Artist",
	"Other",
}

// Return modality: how a student intends to reciprocate support.
var FinancialSupportReturnOptions = []string{
	"Philanthropy",
	"Income_Share",
	"Work_Back_Service",
	"Unspecified",
}
