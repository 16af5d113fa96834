package cli

const cardTemplate = `
=== Card Details ===

Nickname:      {{ .Nickname }}
ID:            {{ .ID }}
Name:          {{ .Name }}
Number:        {{ .Number }}
Expiration:    {{ .Expiration }}
Security Code: {{ .SecurityCode }}
Network:       {{ .Network.DisplayName }}
`

const cardListTemplate = `
=== Saved Cards ===

Found {{ len . }} card(s):
{{ range . }}
- {{ if .Nickname }}{{ .Nickname }}{{ else }}(no nickname){{ end }}{{ if .Revealed }} [revealed]{{ end }}
   ID:         {{ .ID }}
   Name:       {{ .Name }}
   Number:     {{ .Number }}
   Expiration: {{ .Expiration }}
   CVV:        {{ .SecurityCode }}
   Network:    {{ .Network.DisplayName }}
{{ end }}
Note: Card details are masked. Use 'omnicard list --reveal <id>' or 'omnicard get <id>' to view them.
`

const versionTemplate = `OmniCard
Version:    {{ .Version }}
Build Date: {{ .BuildDate }}
Git Commit: {{ .GitCommit }}
`
