package models

// SettingsModel is the singleton site configuration.
type SettingsModel struct {
	SiteName          string   `json:"site_name"`
	SiteTagline       string   `json:"site_tagline"`
	ContactEmail      string   `json:"contact_email"`
	ContactPhone      string   `json:"contact_phone"`
	Address           string   `json:"address"`
	IsMaintenanceMode bool     `json:"is_maintenance_mode"`
	EnableAISummaries bool     `json:"enable_ai_summaries"`
	BreakingNewsCount int      `json:"breaking_news_count"`
	Categories        []string `json:"categories"`
}

// DefaultSettings returns the configuration a fresh installation boots with.
func DefaultSettings() SettingsModel {
	return SettingsModel{
		SiteName:          "Majlis Kantho",
		SiteTagline:       "Credible. Fast. Local.",
		ContactEmail:      "contact@majliskantho.com",
		ContactPhone:      "+880 2 9876543",
		Address:           "Plot 15, Block B, Bashundhara, Dhaka",
		IsMaintenanceMode: false,
		EnableAISummaries: true,
		BreakingNewsCount: 5,
		Categories: []string{
			"National",
			"International",
			"Politics",
			"Economy",
			"Sports",
			"Entertainment",
			"Religion",
			"Education",
			"Technology",
		},
	}
}
