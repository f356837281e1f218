package mail

type SpecsheetEmailData struct {
	AttachmentCount int
}

type EmailSender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
}
