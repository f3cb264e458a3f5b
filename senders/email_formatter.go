package senders

type WelcomeEmailFormat struct{}

func (ef *WelcomeEmailFormat) Subject() string {
	return "Thank you for subscribing!"
}

func (ef *WelcomeEmailFormat) Body() string {
	return `
		<h3>Welcome aboard!</h3>
		<p>You are subscribed. The latest posts will be delivered right to your inbox.</p>
	`
}
