package domain

// Profile is the candidate identity merged into every prompt.
type Profile struct {
	Name           string `json:"name" yaml:"name"`
	Degree         string `json:"degree" yaml:"degree"`
	GraduationYear string `json:"graduationYear" yaml:"graduation_year"`
	University     string `json:"university" yaml:"university"`
	CGPA           string `json:"cgpa" yaml:"cgpa"`
	ResumeLink     string `json:"resumeLink" yaml:"resume_link"`
	Email          string `json:"emailId" yaml:"email"`
	Contact        string `json:"contact" yaml:"contact"`
	Website        string `json:"website" yaml:"website"`
	Skills         string `json:"skills" yaml:"skills"`
	Experience     string `json:"experience" yaml:"experience"`
	Projects       string `json:"projects" yaml:"projects"`
}

// IsZero reports whether no profile field has been filled in.
func (p Profile) IsZero() bool {
	return p == Profile{}
}
