package career

// careerPaths is the master catalog served by /career-paths. Loaded once,
// never mutated at runtime.
var careerPaths = []string{
	"Software Engineer", "Data Scientist", "Product Manager", "UX/UI Designer",
	"Digital Marketing Manager", "Business Analyst", "Project Manager", "Sales Manager",
	"Content Writer", "Graphic Designer", "Financial Analyst", "HR Manager",
	"Operations Manager", "Customer Success Manager", "Cybersecurity Analyst",
	"Machine Learning Engineer", "DevOps Engineer", "Marketing Coordinator",
	"Consultant", "Account Manager", "Quality Assurance Engineer", "Systems Administrator",
	"Network Engineer", "Database Administrator", "Mobile App Developer",
	"Web Developer", "Technical Writer", "Social Media Manager", "Event Coordinator",
	"Training Specialist",
}

// Paths returns a copy of the career path catalog.
func Paths() []string {
	out := make([]string, len(careerPaths))
	copy(out, careerPaths)
	return out
}
