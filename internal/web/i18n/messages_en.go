package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("en-US")

	// Layout and navigation
	message.SetString(lang, "site.name", "Brightfield School")
	message.SetString(lang, "meta.description", "Early years and elementary school: our history, academic model, facilities, staff, notices, downloads, and calendar.")
	message.SetString(lang, "nav.menu", "Menu")
	message.SetString(lang, "nav.history", "History")
	message.SetString(lang, "nav.academics", "Academics")
	message.SetString(lang, "nav.facilities", "Facilities")
	message.SetString(lang, "nav.staff", "Staff")
	message.SetString(lang, "nav.council", "Parent council")
	message.SetString(lang, "nav.notices", "Notices")
	message.SetString(lang, "nav.downloads", "Downloads")
	message.SetString(lang, "nav.calendar", "Calendar")
	message.SetString(lang, "nav.contact", "Contact")
	message.SetString(lang, "nav.suggestions", "Suggestions")
	message.SetString(lang, "nav.lang_pt_br", "Português")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "footer.rights", "All rights reserved.")

	// Hero
	message.SetString(lang, "hero.title", "Teaching with care, growing with joy")
	message.SetString(lang, "hero.subtitle", "For over three decades we have raised curious, independent children ready for the world.")
	message.SetString(lang, "hero.cta", "Get to know the school")

	// History
	message.SetString(lang, "section.history.title", "Our history")
	message.SetString(lang, "history.body1", "Founded in 1992 by a group of neighborhood educators, Brightfield School started in an adapted house with three classrooms and a backyard. The commitment was simple: quality education with doors open to the community.")
	message.SetString(lang, "history.body2", "Today the school serves over four hundred students from early years through fifth grade, at the same address, in a building raised with the active help of its families.")

	// Academics
	message.SetString(lang, "section.academics.title", "Academic model")
	message.SetString(lang, "academics.intro", "Our curriculum combines the national common core with interdisciplinary projects led by the classes themselves.")
	message.SetString(lang, "academics.early_years.title", "Early years")
	message.SetString(lang, "academics.early_years.description", "Classes for ages 4 and 5 focused on language, structured play, and life in a group.")
	message.SetString(lang, "academics.elementary.title", "Elementary school")
	message.SetString(lang, "academics.elementary.description", "Grades 1 through 5, with full literacy by the end of grade 2 and science and reading projects at every grade.")
	message.SetString(lang, "academics.full_time.title", "Extended day")
	message.SetString(lang, "academics.full_time.description", "Art, sports, and tutoring workshops in the afternoon, with lunch at school.")

	// Facilities
	message.SetString(lang, "section.facilities.title", "Facilities")
	message.SetString(lang, "facility.library.name", "Library")
	message.SetString(lang, "facility.library.description", "Eight thousand titles and weekly reading circles.")
	message.SetString(lang, "facility.science_lab.name", "Science lab")
	message.SetString(lang, "facility.science_lab.description", "Benches adapted for safe experiments from grade 1 to 5.")
	message.SetString(lang, "facility.computer_room.name", "Computer room")
	message.SetString(lang, "facility.computer_room.description", "Twenty stations with supervised internet access.")
	message.SetString(lang, "facility.sports_court.name", "Sports court")
	message.SetString(lang, "facility.sports_court.description", "Covered court for physical education and festivals.")
	message.SetString(lang, "facility.playground.name", "Playground")
	message.SetString(lang, "facility.playground.description", "Green area with certified equipment for the early years.")
	message.SetString(lang, "facility.cafeteria.name", "Cafeteria")
	message.SetString(lang, "facility.cafeteria.description", "Meals cooked at school with a nutritionist-designed menu.")

	// Staff
	message.SetString(lang, "section.staff.title", "Our staff")
	message.SetString(lang, "staff.role.principal", "Principal")
	message.SetString(lang, "staff.role.vice_principal", "Vice principal")
	message.SetString(lang, "staff.role.pedagogical_coordinator", "Pedagogical coordinator")
	message.SetString(lang, "staff.role.early_years_teacher", "Early years teacher")
	message.SetString(lang, "staff.role.elementary_teacher", "Elementary teacher")
	message.SetString(lang, "staff.role.physical_education", "Physical education teacher")
	message.SetString(lang, "staff.role.arts_teacher", "Arts teacher")
	message.SetString(lang, "staff.role.librarian", "Librarian")
	message.SetString(lang, "staff.role.secretary", "School secretary")

	// Parent council
	message.SetString(lang, "section.council.title", "Parent council")
	message.SetString(lang, "council.intro", "The council meets on the first Tuesday of every month and follows the school's pedagogical and financial decisions.")
	message.SetString(lang, "council.role.president", "President")
	message.SetString(lang, "council.role.vice_president", "Vice president")
	message.SetString(lang, "council.role.treasurer", "Treasurer")
	message.SetString(lang, "council.role.secretary", "Secretary")
	message.SetString(lang, "council.role.member", "Council member")

	// Notices
	message.SetString(lang, "section.notices.title", "Notices")
	message.SetString(lang, "notices.empty", "No notices published at the moment.")
	message.SetString(lang, "notices.pinned", "Pinned")

	// Downloads
	message.SetString(lang, "section.downloads.title", "Downloads")
	message.SetString(lang, "downloads.empty", "No documents available at the moment.")
	message.SetString(lang, "downloads.category.enrollment", "Enrollment")
	message.SetString(lang, "downloads.category.policies", "School documents")
	message.SetString(lang, "downloads.category.cafeteria", "Cafeteria")

	// Calendar
	message.SetString(lang, "section.calendar.title", "School calendar")
	message.SetString(lang, "calendar.empty", "No events scheduled.")

	// Contact
	message.SetString(lang, "section.contact.title", "Contact")
	message.SetString(lang, "contact.address_label", "Address")
	message.SetString(lang, "contact.address", "Rua das Paineiras, 180 — Jardim Aurora, Belo Horizonte, Brazil")
	message.SetString(lang, "contact.phone_label", "Phone")
	message.SetString(lang, "contact.email_label", "Email")
	message.SetString(lang, "contact.hours_label", "Office hours")
	message.SetString(lang, "contact.hours", "Monday to Friday, 7:30am to 5:30pm")

	// Suggestion form
	message.SetString(lang, "section.suggestions.title", "Suggestion box")
	message.SetString(lang, "suggestion.intro", "Have an idea to improve the school? Write to the administration. We read every message.")
	message.SetString(lang, "suggestion.email_label", "Your email")
	message.SetString(lang, "suggestion.email_invalid", "Enter a valid email address.")
	message.SetString(lang, "suggestion.message_label", "Your suggestion")
	message.SetString(lang, "suggestion.message_hint", "Write at least one full sentence (more than 10 characters).")
	message.SetString(lang, "suggestion.submit", "Send suggestion")
	message.SetString(lang, "suggestion.sending", "Sending…")
	message.SetString(lang, "suggestion.status.success", "Suggestion sent. Thank you for taking part!")
	message.SetString(lang, "suggestion.status.error", "We could not send it right now. Please try again shortly.")
	message.SetString(lang, "suggestion.flash.sent", "Suggestion sent. Thank you for taking part!")
	message.SetString(lang, "suggestion.flash.failed", "We could not send it right now. Please try again shortly.")
	message.SetString(lang, "suggestion.flash.invalid", "Check the email address and the message length before sending.")
	message.SetString(lang, "suggestion.flash.busy", "A submission is already in progress. Give it a moment.")

	// Error pages
	message.SetString(lang, "error.title_not_found", "Page not found")
	message.SetString(lang, "error.message_not_found", "That address does not exist. Use the menu to get back to the site.")
	message.SetString(lang, "error.title_server", "Something went wrong")
	message.SetString(lang, "error.message_server", "We had a problem building the page. Please try again shortly.")
	message.SetString(lang, "error.back_home", "Back to the home page")
}
