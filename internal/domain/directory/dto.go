package directory

// ========== PERSON SUMMARY ==========

// PersonSummary is the compact person reference returned by hierarchy lookups
type PersonSummary struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	FullName      string  `json:"full_name"`
	ApprovalLevel string  `json:"approval_level"`
	DepartmentID  *string `json:"department_id,omitempty"`
	UnitID        *string `json:"unit_id,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// ========== ORG PROFILE ==========

// OrgProfileResponse is the combined hierarchy view for a single user:
// where they sit, who approves for them, and who they answer for
type OrgProfileResponse struct {
	Person           PersonSummary   `json:"person"`
	Supervisor       *PersonSummary  `json:"supervisor,omitempty"`
	DepartmentHead   *PersonSummary  `json:"department_head,omitempty"`
	Subordinates     []PersonSummary `json:"subordinates"`
	IsDepartmentHead bool            `json:"is_department_head"`
	IsUnitSupervisor bool            `json:"is_unit_supervisor"`
	CanApprove       bool            `json:"can_approve"`
	IsSuspended      bool            `json:"is_suspended"`
	Age              *int            `json:"age,omitempty"`
}
