package usecase

type TokenIssuer interface {
	Issue(email string) (string, error)
}

type WelcomeMailer interface {
	SendWelcome(to string) error
}
