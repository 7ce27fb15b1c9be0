package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	// Shared chrome
	message.SetString(lang, "site.name", "Abismo RPG")
	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.admin", "Painel")
	message.SetString(lang, "nav.login", "Entrar")
	message.SetString(lang, "nav.logout", "Sair")

	// Public page
	message.SetString(lang, "title.home", "%s | Comandos")
	message.SetString(lang, "home.heading", "Comandos")
	message.SetString(lang, "home.empty", "Nenhum comando cadastrado ainda.")

	// Login page
	message.SetString(lang, "title.login", "%s | Entrar")
	message.SetString(lang, "login.heading", "Entrar no painel")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Senha")
	message.SetString(lang, "login.submit", "Entrar")

	// Admin panel
	message.SetString(lang, "title.admin", "%s | Painel")
	message.SetString(lang, "admin.heading", "Painel de comandos")
	message.SetString(lang, "admin.form_heading_new", "Novo comando")
	message.SetString(lang, "admin.form_heading_edit", "Editar comando")
	message.SetString(lang, "admin.field_command", "Comando")
	message.SetString(lang, "admin.field_title", "Título")
	message.SetString(lang, "admin.field_category", "Categoria")
	message.SetString(lang, "admin.field_new_category", "Nova categoria")
	message.SetString(lang, "admin.field_response", "Resposta")
	message.SetString(lang, "admin.field_image", "Imagem")
	message.SetString(lang, "admin.submit_create", "Criar")
	message.SetString(lang, "admin.submit_update", "Salvar")
	message.SetString(lang, "admin.cancel_edit", "Cancelar edição")
	message.SetString(lang, "admin.edit", "Editar")
	message.SetString(lang, "admin.delete", "Excluir")
	message.SetString(lang, "admin.list_heading", "Comandos cadastrados")
	message.SetString(lang, "admin.empty", "Nenhum comando cadastrado.")

	// Delete confirmation
	message.SetString(lang, "title.delete", "%s | Excluir comando")
	message.SetString(lang, "delete.heading", "Excluir comando")
	message.SetString(lang, "delete.question", "Tem certeza que deseja excluir o comando %s?")
	message.SetString(lang, "delete.confirm", "Excluir")
	message.SetString(lang, "delete.cancel", "Cancelar")

	// Unauthorized page
	message.SetString(lang, "title.unauthorized", "%s | Acesso negado")
	message.SetString(lang, "unauthorized.heading", "Acesso negado")
	message.SetString(lang, "unauthorized.message", "Sua conta não tem permissão para acessar o painel.")
	message.SetString(lang, "unauthorized.back", "Voltar ao início")

	// Flash notices
	message.SetString(lang, "flash.command_created", "Comando criado com sucesso.")
	message.SetString(lang, "flash.command_updated", "Comando atualizado com sucesso.")
	message.SetString(lang, "flash.command_deleted", "Comando excluído com sucesso.")

	// Errors
	message.SetString(lang, "error.fields_required", "Por favor preencha todos os campos obrigatórios.")
	message.SetString(lang, "error.image_invalid_type", "O arquivo deve ser uma imagem.")
	message.SetString(lang, "error.image_too_large", "O arquivo deve ser menor que 5MB.")
	message.SetString(lang, "error.image_decode_failed", "Não foi possível processar a imagem enviada.")
	message.SetString(lang, "error.upload_failed", "Falha ao enviar a imagem. Tente novamente.")
	message.SetString(lang, "error.storage_failure", "Erro ao salvar o comando. Tente novamente.")
	message.SetString(lang, "error.not_found", "Comando não encontrado.")
	message.SetString(lang, "error.invalid_credentials", "Email ou senha inválidos.")
	message.SetString(lang, "error.unknown", "Ocorreu um erro inesperado. Tente novamente.")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
