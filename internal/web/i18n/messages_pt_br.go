package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Layout and navigation
	message.SetString(lang, "site.name", "Escola Brightfield")
	message.SetString(lang, "meta.description", "Escola de ensino infantil e fundamental: história, proposta pedagógica, estrutura, equipe, avisos, downloads e calendário.")
	message.SetString(lang, "nav.menu", "Menu")
	message.SetString(lang, "nav.history", "História")
	message.SetString(lang, "nav.academics", "Proposta pedagógica")
	message.SetString(lang, "nav.facilities", "Estrutura")
	message.SetString(lang, "nav.staff", "Equipe")
	message.SetString(lang, "nav.council", "Conselho de pais")
	message.SetString(lang, "nav.notices", "Avisos")
	message.SetString(lang, "nav.downloads", "Downloads")
	message.SetString(lang, "nav.calendar", "Calendário")
	message.SetString(lang, "nav.contact", "Contato")
	message.SetString(lang, "nav.suggestions", "Sugestões")
	message.SetString(lang, "nav.lang_pt_br", "Português")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "footer.rights", "Todos os direitos reservados.")

	// Hero
	message.SetString(lang, "hero.title", "Educar com cuidado, crescer com alegria")
	message.SetString(lang, "hero.subtitle", "Há mais de três décadas formando crianças curiosas, autônomas e preparadas para o mundo.")
	message.SetString(lang, "hero.cta", "Conheça a escola")

	// History
	message.SetString(lang, "section.history.title", "Nossa história")
	message.SetString(lang, "history.body1", "Fundada em 1992 por um grupo de educadoras do bairro, a Escola Brightfield nasceu em uma casa adaptada com três salas de aula e um quintal. O compromisso era simples: ensino público de qualidade, portas abertas para a comunidade.")
	message.SetString(lang, "history.body2", "Hoje a escola atende mais de quatrocentos alunos da educação infantil ao quinto ano, no mesmo endereço, em um prédio próprio construído com a participação ativa das famílias.")

	// Academics
	message.SetString(lang, "section.academics.title", "Proposta pedagógica")
	message.SetString(lang, "academics.intro", "Nosso currículo combina a base nacional comum com projetos interdisciplinares conduzidos pelas próprias turmas.")
	message.SetString(lang, "academics.early_years.title", "Educação infantil")
	message.SetString(lang, "academics.early_years.description", "Turmas de 4 e 5 anos com foco em linguagem, brincadeira estruturada e vida em grupo.")
	message.SetString(lang, "academics.elementary.title", "Ensino fundamental I")
	message.SetString(lang, "academics.elementary.description", "Do 1º ao 5º ano, com alfabetização plena até o fim do 2º ano e projetos de ciências e leitura em todas as séries.")
	message.SetString(lang, "academics.full_time.title", "Período integral")
	message.SetString(lang, "academics.full_time.description", "Oficinas de arte, esporte e reforço escolar no contraturno, com almoço na escola.")

	// Facilities
	message.SetString(lang, "section.facilities.title", "Estrutura")
	message.SetString(lang, "facility.library.name", "Biblioteca")
	message.SetString(lang, "facility.library.description", "Acervo de oito mil títulos e rodas de leitura semanais.")
	message.SetString(lang, "facility.science_lab.name", "Laboratório de ciências")
	message.SetString(lang, "facility.science_lab.description", "Bancadas adaptadas para experimentos seguros do 1º ao 5º ano.")
	message.SetString(lang, "facility.computer_room.name", "Sala de informática")
	message.SetString(lang, "facility.computer_room.description", "Vinte estações com acesso supervisionado à internet.")
	message.SetString(lang, "facility.sports_court.name", "Quadra poliesportiva")
	message.SetString(lang, "facility.sports_court.description", "Quadra coberta para educação física e festivais.")
	message.SetString(lang, "facility.playground.name", "Parquinho")
	message.SetString(lang, "facility.playground.description", "Área verde com brinquedos certificados para a educação infantil.")
	message.SetString(lang, "facility.cafeteria.name", "Refeitório")
	message.SetString(lang, "facility.cafeteria.description", "Merenda preparada na escola com cardápio de nutricionista.")

	// Staff
	message.SetString(lang, "section.staff.title", "Nossa equipe")
	message.SetString(lang, "staff.role.principal", "Diretora")
	message.SetString(lang, "staff.role.vice_principal", "Vice-diretor")
	message.SetString(lang, "staff.role.pedagogical_coordinator", "Coordenadora pedagógica")
	message.SetString(lang, "staff.role.early_years_teacher", "Professora da educação infantil")
	message.SetString(lang, "staff.role.elementary_teacher", "Docente do fundamental I")
	message.SetString(lang, "staff.role.physical_education", "Professor de educação física")
	message.SetString(lang, "staff.role.arts_teacher", "Professora de artes")
	message.SetString(lang, "staff.role.librarian", "Bibliotecário")
	message.SetString(lang, "staff.role.secretary", "Secretária escolar")

	// Parent council
	message.SetString(lang, "section.council.title", "Conselho de pais")
	message.SetString(lang, "council.intro", "O conselho reúne-se na primeira terça-feira de cada mês e acompanha as decisões pedagógicas e financeiras da escola.")
	message.SetString(lang, "council.role.president", "Presidente")
	message.SetString(lang, "council.role.vice_president", "Vice-presidente")
	message.SetString(lang, "council.role.treasurer", "Tesoureira")
	message.SetString(lang, "council.role.secretary", "Secretário")
	message.SetString(lang, "council.role.member", "Conselheiro")

	// Notices
	message.SetString(lang, "section.notices.title", "Avisos")
	message.SetString(lang, "notices.empty", "Nenhum aviso publicado no momento.")
	message.SetString(lang, "notices.pinned", "Fixado")

	// Downloads
	message.SetString(lang, "section.downloads.title", "Downloads")
	message.SetString(lang, "downloads.empty", "Nenhum documento disponível no momento.")
	message.SetString(lang, "downloads.category.enrollment", "Matrícula")
	message.SetString(lang, "downloads.category.policies", "Documentos da escola")
	message.SetString(lang, "downloads.category.cafeteria", "Refeitório")

	// Calendar
	message.SetString(lang, "section.calendar.title", "Calendário escolar")
	message.SetString(lang, "calendar.empty", "Nenhum evento programado.")

	// Contact
	message.SetString(lang, "section.contact.title", "Contato")
	message.SetString(lang, "contact.address_label", "Endereço")
	message.SetString(lang, "contact.address", "Rua das Paineiras, 180 — Jardim Aurora, Belo Horizonte/MG")
	message.SetString(lang, "contact.phone_label", "Telefone")
	message.SetString(lang, "contact.email_label", "E-mail")
	message.SetString(lang, "contact.hours_label", "Horário de atendimento")
	message.SetString(lang, "contact.hours", "Segunda a sexta, das 7h30 às 17h30")

	// Suggestion form
	message.SetString(lang, "section.suggestions.title", "Caixa de sugestões")
	message.SetString(lang, "suggestion.intro", "Tem uma ideia para melhorar a escola? Escreva para a direção. Lemos todas as mensagens.")
	message.SetString(lang, "suggestion.email_label", "Seu e-mail")
	message.SetString(lang, "suggestion.email_invalid", "Informe um endereço de e-mail válido.")
	message.SetString(lang, "suggestion.message_label", "Sua sugestão")
	message.SetString(lang, "suggestion.message_hint", "Escreva pelo menos uma frase completa (mais de 10 caracteres).")
	message.SetString(lang, "suggestion.submit", "Enviar sugestão")
	message.SetString(lang, "suggestion.sending", "Enviando…")
	message.SetString(lang, "suggestion.status.success", "Sugestão enviada. Obrigado por participar!")
	message.SetString(lang, "suggestion.status.error", "Não foi possível enviar agora. Tente novamente em instantes.")
	message.SetString(lang, "suggestion.flash.sent", "Sugestão enviada. Obrigado por participar!")
	message.SetString(lang, "suggestion.flash.failed", "Não foi possível enviar agora. Tente novamente em instantes.")
	message.SetString(lang, "suggestion.flash.invalid", "Verifique o e-mail e o tamanho da mensagem antes de enviar.")
	message.SetString(lang, "suggestion.flash.busy", "Já existe um envio em andamento. Aguarde um instante.")

	// Error pages
	message.SetString(lang, "error.title_not_found", "Página não encontrada")
	message.SetString(lang, "error.message_not_found", "O endereço digitado não existe. Use o menu para voltar ao site.")
	message.SetString(lang, "error.title_server", "Algo deu errado")
	message.SetString(lang, "error.message_server", "Tivemos um problema ao montar a página. Tente novamente em instantes.")
	message.SetString(lang, "error.back_home", "Voltar para a página inicial")
}
