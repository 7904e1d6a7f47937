package domain

import "strings"

// JobRequest describes the target job and the formatting preferences for a
// single generation call.
type JobRequest struct {
	CompanyName            string `json:"companyName" yaml:"company_name"`
	Role                   string `json:"role" yaml:"role"`
	JobID                  string `json:"jobId" yaml:"job_id"`
	JobDescription         string `json:"jobDescription" yaml:"job_description"`
	JobLink                string `json:"jobLink" yaml:"job_link"`
	ResumeLink             string `json:"resumeLink" yaml:"resume_link"`
	AdditionalInstructions string `json:"additionalInstructions" yaml:"additional_instructions"`
	Email                  string `json:"emailId" yaml:"email"`
	Contact                string `json:"contact" yaml:"contact"`

	IncludeResumeLink bool `json:"includeResumeLink" yaml:"include_resume_link"`
	IncludeJobID      bool `json:"includeJobId" yaml:"include_job_id"`
	IncludeJobLink    bool `json:"includeJobLink" yaml:"include_job_link"`
	IncludeEmail      bool `json:"includeEmailId" yaml:"include_email"`
	IncludeContact    bool `json:"includeContact" yaml:"include_contact"`
	IncludeProjects   bool `json:"includeProjects" yaml:"include_projects"`
	IncludeExperience bool `json:"includeExperience" yaml:"include_experience"`
}

// DefaultJobRequest returns the form defaults: resume link and job id are
// included in the closing block, everything else is opt-in.
func DefaultJobRequest() JobRequest {
	return JobRequest{
		IncludeResumeLink: true,
		IncludeJobID:      true,
	}
}

// ValidateForReferral checks the fields a referral email cannot be built without.
func (r JobRequest) ValidateForReferral() error {
	var missing []string
	if strings.TrimSpace(r.CompanyName) == "" {
		missing = append(missing, "company name")
	}
	if strings.TrimSpace(r.Role) == "" {
		missing = append(missing, "role")
	}
	if strings.TrimSpace(r.JobID) == "" {
		missing = append(missing, "job id")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "Please provide Company Name, Role, and Job ID before generating the email.",
		}
	}
	return nil
}

// ValidateForCoverLetter checks the fields a cover letter cannot be built without.
func (r JobRequest) ValidateForCoverLetter() error {
	var missing []string
	if strings.TrimSpace(r.CompanyName) == "" {
		missing = append(missing, "company name")
	}
	if strings.TrimSpace(r.Role) == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return &ValidationError{
			Fields:  missing,
			Message: "Please provide Company Name and Role before generating the cover letter.",
		}
	}
	return nil
}

// WithProfileDefaults returns a copy of r whose empty contact fields are
// filled from the profile. Request values always win.
func (r JobRequest) WithProfileDefaults(p Profile) JobRequest {
	r.ResumeLink = CoalesceStr(r.ResumeLink, p.ResumeLink)
	r.Email = CoalesceStr(r.Email, p.Email)
	r.Contact = CoalesceStr(r.Contact, p.Contact)
	return r
}
