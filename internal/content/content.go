// Package content defines the site's section catalog and the fixed data
// rendered into it: staff, facilities, parent council, and contact details.
// Copy that needs translation lives in the web i18n message catalogs; this
// package only carries the message keys and untranslated data such as names.
package content

// SectionID identifies one scrollable block of the single-page site. The
// values double as URL fragments for nav anchors.
type SectionID string

const (
	SectionHistory     SectionID = "history"
	SectionAcademics   SectionID = "academics"
	SectionFacilities  SectionID = "facilities"
	SectionStaff       SectionID = "staff"
	SectionCouncil     SectionID = "council"
	SectionNotices     SectionID = "notices"
	SectionDownloads   SectionID = "downloads"
	SectionCalendar    SectionID = "calendar"
	SectionContact     SectionID = "contact"
	SectionSuggestions SectionID = "suggestions"
)

// Section describes one content block and its nav entry.
type Section struct {
	ID       SectionID
	TitleKey string
	NavKey   string
}

// Sections returns the site's sections in display order.
func Sections() []Section {
	return []Section{
		{ID: SectionHistory, TitleKey: "section.history.title", NavKey: "nav.history"},
		{ID: SectionAcademics, TitleKey: "section.academics.title", NavKey: "nav.academics"},
		{ID: SectionFacilities, TitleKey: "section.facilities.title", NavKey: "nav.facilities"},
		{ID: SectionStaff, TitleKey: "section.staff.title", NavKey: "nav.staff"},
		{ID: SectionCouncil, TitleKey: "section.council.title", NavKey: "nav.council"},
		{ID: SectionNotices, TitleKey: "section.notices.title", NavKey: "nav.notices"},
		{ID: SectionDownloads, TitleKey: "section.downloads.title", NavKey: "nav.downloads"},
		{ID: SectionCalendar, TitleKey: "section.calendar.title", NavKey: "nav.calendar"},
		{ID: SectionContact, TitleKey: "section.contact.title", NavKey: "nav.contact"},
		{ID: SectionSuggestions, TitleKey: "section.suggestions.title", NavKey: "nav.suggestions"},
	}
}

// StaffMember is one entry in the staff section. Names are rendered as-is;
// roles go through the message catalog.
type StaffMember struct {
	Name    string
	RoleKey string
}

// Staff returns the teaching and administrative staff in display order.
func Staff() []StaffMember {
	return []StaffMember{
		{Name: "Helena Prado", RoleKey: "staff.role.principal"},
		{Name: "Marcos Vilela", RoleKey: "staff.role.vice_principal"},
		{Name: "Ana Beatriz Rocha", RoleKey: "staff.role.pedagogical_coordinator"},
		{Name: "Carla Osório", RoleKey: "staff.role.early_years_teacher"},
		{Name: "Diego Fontes", RoleKey: "staff.role.elementary_teacher"},
		{Name: "Juliana Castelo", RoleKey: "staff.role.elementary_teacher"},
		{Name: "Renato Lacerda", RoleKey: "staff.role.physical_education"},
		{Name: "Sofia Meirelles", RoleKey: "staff.role.arts_teacher"},
		{Name: "Tiago Andrade", RoleKey: "staff.role.librarian"},
		{Name: "Vera Campos", RoleKey: "staff.role.secretary"},
	}
}

// Facility is one entry in the facilities section.
type Facility struct {
	NameKey        string
	DescriptionKey string
	Icon           string
}

// Facilities returns the campus facilities in display order.
func Facilities() []Facility {
	return []Facility{
		{NameKey: "facility.library.name", DescriptionKey: "facility.library.description", Icon: "book"},
		{NameKey: "facility.science_lab.name", DescriptionKey: "facility.science_lab.description", Icon: "flask"},
		{NameKey: "facility.computer_room.name", DescriptionKey: "facility.computer_room.description", Icon: "monitor"},
		{NameKey: "facility.sports_court.name", DescriptionKey: "facility.sports_court.description", Icon: "ball"},
		{NameKey: "facility.playground.name", DescriptionKey: "facility.playground.description", Icon: "slide"},
		{NameKey: "facility.cafeteria.name", DescriptionKey: "facility.cafeteria.description", Icon: "plate"},
	}
}

// CouncilMember is one entry in the parent council section.
type CouncilMember struct {
	Name    string
	RoleKey string
}

// Council returns the parent council members in display order.
func Council() []CouncilMember {
	return []CouncilMember{
		{Name: "Patrícia Lemos", RoleKey: "council.role.president"},
		{Name: "Eduardo Sales", RoleKey: "council.role.vice_president"},
		{Name: "Fernanda Ayres", RoleKey: "council.role.treasurer"},
		{Name: "Gustavo Pinheiro", RoleKey: "council.role.secretary"},
		{Name: "Luciana Duarte", RoleKey: "council.role.member"},
		{Name: "Rodrigo Tavares", RoleKey: "council.role.member"},
	}
}

// Contact holds the school's fixed contact details.
type Contact struct {
	AddressKey string
	Phone      string
	Email      string
	HoursKey   string
}

// ContactDetails returns the contact section data.
func ContactDetails() Contact {
	return Contact{
		AddressKey: "contact.address",
		Phone:      "+55 31 3555-0148",
		Email:      "secretaria@brightfield.edu.br",
		HoursKey:   "contact.hours",
	}
}
