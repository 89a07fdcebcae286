package i18n

// Catálogos embebidos. Se usan cuando no se pasa un directorio de locales,
// así el binario funciona sin archivos externos.

var defaultMessagesEN = `
[app_usage]
other = "Summarize GitHub Pull Requests with AI, right from your terminal"

[app_description]
other = "MatePR fetches a Pull Request from GitHub, builds a prompt with its files and commits, and asks an LLM (or a local heuristic) for a review-ready summary."

[help_command_usage]
other = "Shows help"

[summarize_command_usage]
other = "Generate a summary for a Pull Request"

[flag_repo_usage]
other = "Repository in owner/name format"

[flag_pr_number_usage]
other = "Pull Request number"

[flag_provider_usage]
other = "Provider to use: basic, openai, gemini or ollama"

[flag_output_usage]
other = "Write the summary to this file instead of stdout"

[flag_model_usage]
other = "Override the model for the selected provider"

[flag_ollama_url_usage]
other = "Base URL of the ollama server"

[flag_token_usage]
other = "GitHub token (overrides config and GITHUB_TOKEN)"

[flag_lang_usage]
other = "Language for messages and prompts (en/es)"

[flag_debug_usage]
other = "Enable debug logging"

[flag_verbose_usage]
other = "Enable verbose logging"

[spinner_fetching_pr]
other = "Fetching PR #{{.PRNumber}} from {{.Repo}}..."

[spinner_generating_summary]
other = "Generating summary with {{.Provider}}..."

[summary_header]
other = "Summary for {{.Repo}}#{{.PRNumber}}"

[summary_saved]
other = "Summary written to {{.Path}}"

[summary_files_header]
one = "{{.Count}} file changed"
other = "{{.Count}} files changed"

[usage_stats_line]
other = "Tokens: {{.InputTokens}} in / {{.OutputTokens}} out (~${{.Cost}})"

[serve_command_usage]
other = "Start the web front-end"

[serve_flag_port_usage]
other = "Port to listen on"

[serve_listening]
other = "MatePR web listening on http://localhost:{{.Port}}"

[serve_shutting_down]
other = "Shutting down web server..."

[web_missing_fields]
other = "Repository and PR number are required"

[config_command_usage]
other = "Manage MatePR configuration"

[config_show_usage]
other = "Show the current configuration"

[config_set_lang_usage]
other = "Set the language (en/es)"

[config_set_lang_flag_usage]
other = "Language code"

[config_set_provider_usage]
other = "Set the default provider"

[config_set_provider_flag_usage]
other = "Provider name: basic, openai, gemini or ollama"

[config_set_model_usage]
other = "Set the model for a provider"

[config_set_model_flag_provider_usage]
other = "Provider to configure"

[config_set_model_flag_model_usage]
other = "Model name"

[config_set_ollama_url_usage]
other = "Set the base URL of the ollama server"

[config_set_ollama_url_flag_usage]
other = "Base URL, e.g. http://localhost:11434"

[config_set_token_usage]
other = "Store the GitHub token in the config file"

[config_set_token_flag_usage]
other = "GitHub personal access token"

[unsupported_language]
other = "Unsupported language. Available: en, es"

[language_configured]
other = "✅ Language set to: {{.Lang}}"

[provider_configured]
other = "✅ Default provider set to: {{.Provider}}"

[model_configured]
other = "✅ Model for {{.Provider}} set to: {{.Model}}"

[ollama_url_configured]
other = "✅ Ollama URL set to: {{.URL}}"

[token_configured]
other = "✅ GitHub token saved"

[unsupported_provider]
other = "Unsupported provider '{{.Provider}}'. Available: {{.Providers}}"

[current_config]
other = "Current configuration"

[config_label_language]
other = "Language"

[config_label_provider]
other = "Default provider"

[config_label_token]
other = "GitHub token"

[config_label_ollama_url]
other = "Ollama URL"

[config_label_ollama_model]
other = "Ollama model"

[config_label_api_key]
other = "{{.Provider}} API key"

[config_label_model]
other = "{{.Provider}} model"

[config_value_set]
other = "configured"

[config_value_not_set]
other = "not set"

[factory_already_registered]
other = "factory '{{.FactoryName}}' is already registered"

[ui_error.try_suggestion]
other = "💡 Try: "

[error.get_pr]
other = "Error getting PR #{{.PRNumber}}"

[error.get_pr_files]
other = "Error getting the changed files of PR #{{.PRNumber}}"

[error.get_pr_commits]
other = "Error getting the commits of PR #{{.PRNumber}}"

[error.missing_api_key]
other = "API key for {{.Provider}} is not configured"

[error.summary_failed]
other = "Error generating the summary for PR #{{.PRNumber}}"

[error.save_summary]
other = "Could not write the summary to {{.Path}}"

[completion.command_usage]
other = "Generate shell completion scripts"

[completion.command_description]
other = "Outputs completion scripts for bash or zsh, or installs them into your shell config"

[completion.bash_usage]
other = "Print the bash completion script"

[completion.zsh_usage]
other = "Print the zsh completion script"

[completion.install_usage]
other = "Install completion into your shell config"

[completion.error_home_dir]
other = "Could not resolve home directory: {{.Error}}"

[completion.error_unsupported_shell]
other = "Unsupported shell '{{.Shell}}'. Use bash or zsh"

[completion.already_installed]
other = "Completion already installed in {{.File}}"

[completion.restart_shell]
other = "Restart your shell or run:"

[completion.error_open_config]
other = "Could not open shell config: {{.Error}}"

[completion.error_write_config]
other = "Could not write shell config: {{.Error}}"

[completion.installed_success]
other = "Completion installed in {{.File}}"
`

var defaultMessagesES = `
[app_usage]
other = "Resumí Pull Requests de GitHub con IA, directo desde tu terminal"

[app_description]
other = "MatePR trae un Pull Request de GitHub, arma un prompt con sus archivos y commits, y le pide a un LLM (o a una heurística local) un resumen listo para revisar."

[help_command_usage]
other = "Muestra la ayuda"

[summarize_command_usage]
other = "Generá un resumen para un Pull Request"

[flag_repo_usage]
other = "Repositorio en formato owner/name"

[flag_pr_number_usage]
other = "Número del Pull Request"

[flag_provider_usage]
other = "Proveedor a usar: basic, openai, gemini u ollama"

[flag_output_usage]
other = "Escribe el resumen en este archivo en vez de stdout"

[flag_model_usage]
other = "Sobrescribe el modelo del proveedor seleccionado"

[flag_ollama_url_usage]
other = "URL base del servidor de ollama"

[flag_token_usage]
other = "Token de GitHub (pisa la config y GITHUB_TOKEN)"

[flag_lang_usage]
other = "Idioma para mensajes y prompts (en/es)"

[flag_debug_usage]
other = "Activa el log de depuración"

[flag_verbose_usage]
other = "Activa el log detallado"

[spinner_fetching_pr]
other = "Trayendo el PR #{{.PRNumber}} de {{.Repo}}..."

[spinner_generating_summary]
other = "Generando el resumen con {{.Provider}}..."

[summary_header]
other = "Resumen de {{.Repo}}#{{.PRNumber}}"

[summary_saved]
other = "Resumen guardado en {{.Path}}"

[summary_files_header]
one = "{{.Count}} archivo modificado"
other = "{{.Count}} archivos modificados"

[usage_stats_line]
other = "Tokens: {{.InputTokens}} de entrada / {{.OutputTokens}} de salida (~${{.Cost}})"

[serve_command_usage]
other = "Levanta el front-end web"

[serve_flag_port_usage]
other = "Puerto donde escuchar"

[serve_listening]
other = "MatePR web escuchando en http://localhost:{{.Port}}"

[serve_shutting_down]
other = "Apagando el servidor web..."

[web_missing_fields]
other = "El repositorio y el número de PR son obligatorios"

[config_command_usage]
other = "Gestioná la configuración de MatePR"

[config_show_usage]
other = "Muestra la configuración actual"

[config_set_lang_usage]
other = "Configura el idioma (en/es)"

[config_set_lang_flag_usage]
other = "Código de idioma"

[config_set_provider_usage]
other = "Configura el proveedor por defecto"

[config_set_provider_flag_usage]
other = "Nombre del proveedor: basic, openai, gemini u ollama"

[config_set_model_usage]
other = "Configura el modelo de un proveedor"

[config_set_model_flag_provider_usage]
other = "Proveedor a configurar"

[config_set_model_flag_model_usage]
other = "Nombre del modelo"

[config_set_ollama_url_usage]
other = "Configura la URL base del servidor de ollama"

[config_set_ollama_url_flag_usage]
other = "URL base, ej: http://localhost:11434"

[config_set_token_usage]
other = "Guarda el token de GitHub en el archivo de config"

[config_set_token_flag_usage]
other = "Token personal de GitHub"

[unsupported_language]
other = "Idioma no soportado. Disponibles: en, es"

[language_configured]
other = "✅ Idioma configurado: {{.Lang}}"

[provider_configured]
other = "✅ Proveedor por defecto configurado: {{.Provider}}"

[model_configured]
other = "✅ Modelo de {{.Provider}} configurado: {{.Model}}"

[ollama_url_configured]
other = "✅ URL de ollama configurada: {{.URL}}"

[token_configured]
other = "✅ Token de GitHub guardado"

[unsupported_provider]
other = "Proveedor '{{.Provider}}' no soportado. Disponibles: {{.Providers}}"

[current_config]
other = "Configuración actual"

[config_label_language]
other = "Idioma"

[config_label_provider]
other = "Proveedor por defecto"

[config_label_token]
other = "Token de GitHub"

[config_label_ollama_url]
other = "URL de ollama"

[config_label_ollama_model]
other = "Modelo de ollama"

[config_label_api_key]
other = "API key de {{.Provider}}"

[config_label_model]
other = "Modelo de {{.Provider}}"

[config_value_set]
other = "configurada"

[config_value_not_set]
other = "sin configurar"

[factory_already_registered]
other = "la factory '{{.FactoryName}}' ya está registrada"

[ui_error.try_suggestion]
other = "💡 Probá: "

[error.get_pr]
other = "Error al obtener el PR #{{.PRNumber}}"

[error.get_pr_files]
other = "Error al obtener los archivos modificados del PR #{{.PRNumber}}"

[error.get_pr_commits]
other = "Error al obtener los commits del PR #{{.PRNumber}}"

[error.missing_api_key]
other = "La API key de {{.Provider}} no está configurada"

[error.summary_failed]
other = "Error al generar el resumen del PR #{{.PRNumber}}"

[error.save_summary]
other = "No se pudo escribir el resumen en {{.Path}}"

[completion.command_usage]
other = "Genera scripts de autocompletado para tu shell"

[completion.command_description]
other = "Imprime los scripts de autocompletado para bash o zsh, o los instala en la config de tu shell"

[completion.bash_usage]
other = "Imprime el script de autocompletado de bash"

[completion.zsh_usage]
other = "Imprime el script de autocompletado de zsh"

[completion.install_usage]
other = "Instala el autocompletado en la config de tu shell"

[completion.error_home_dir]
other = "No se pudo resolver el directorio home: {{.Error}}"

[completion.error_unsupported_shell]
other = "Shell '{{.Shell}}' no soportada. Usá bash o zsh"

[completion.already_installed]
other = "El autocompletado ya está instalado en {{.File}}"

[completion.restart_shell]
other = "Reiniciá tu shell o ejecutá:"

[completion.error_open_config]
other = "No se pudo abrir la config de la shell: {{.Error}}"

[completion.error_write_config]
other = "No se pudo escribir la config de la shell: {{.Error}}"

[completion.installed_success]
other = "Autocompletado instalado en {{.File}}"
`
