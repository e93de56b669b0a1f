package email

// Config holds email delivery configuration.
// The Postmark tokens are optional to support development environments
// where outbound delivery is replaced by the DevSender. SenderEmail and
// ReplyToEmail establish the sender identity and reply behavior for
// every outbound campaign email.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	ReplyToEmail         string `env:"REPLY_TO_EMAIL,required"`
}
