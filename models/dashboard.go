package models

// DashboardStats holds the aggregate counts shown on the admin dashboard
type DashboardStats struct {
	Doctors             int `json:"doctors"`
	Patients            int `json:"patients"`
	ActiveConsultations int `json:"activeConsultations"`
	PendingResets       int `json:"pendingResets"`
	UnverifiedDoctors   int `json:"unverifiedDoctors"`
	ConsultationsToday  int `json:"consultationsToday"`
}
