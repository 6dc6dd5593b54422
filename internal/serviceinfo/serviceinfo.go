// Package serviceinfo holds the static self-description document served at
// /service-info and consumed by the CLI.
package serviceinfo

import "fmt"

// Version is the logbay release version reported to clients.
const Version = "0.3.0"

const (
	artifact    = "log-service"
	name        = "Logbay"
	description = "Log-discovery and retrieval microservice for a single node."
)

// Organization identifies who operates the service.
type Organization struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Document is the static self-description returned by /service-info.
type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Description  string       `json:"description"`
	Organization Organization `json:"organization"`
	ContactURL   string       `json:"contactUrl"`
	Version      string       `json:"version"`
}

// New builds the document. serviceID overrides the default id (the service
// type string) when non-empty.
func New(serviceID string) Document {
	serviceType := fmt.Sprintf("org.logbay:%s:%s", artifact, Version)
	if serviceID == "" {
		serviceID = serviceType
	}
	return Document{
		ID:          serviceID,
		Name:        name,
		Type:        serviceType,
		Description: description,
		Organization: Organization{
			Name: "Logbay",
			URL:  "https://github.com/logbay/logbay",
		},
		ContactURL: "mailto:ops@logbay.org",
		Version:    Version,
	}
}
