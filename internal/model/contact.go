package model

import "time"

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// NewsletterSubscriber is an email address subscribed to the newsletter.
type NewsletterSubscriber struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// CollectionPoint is a recycling drop-off location shown on the public site.
type CollectionPoint struct {
	ID        string
	Name      string
	Address   string
	City      string
	State     string
	ZipCode   string
	CreatedAt time.Time
}
