package notify

import (
	"context"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

// FCMDispatcher pushes through Firebase Cloud Messaging to the device token
// captured at login.
type FCMDispatcher struct {
	client *messaging.Client
}

func NewFCMDispatcher(ctx context.Context, credentialsFile string) (*FCMDispatcher, error) {
	opt := option.WithCredentialsFile(credentialsFile)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &FCMDispatcher{client: client}, nil
}

func (d *FCMDispatcher) Send(to, title, body string, data map[string]string) Result {
	if to == "" {
		return failure("no device token registered for recipient")
	}

	message := &messaging.Message{
		Token: to,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := d.client.Send(context.Background(), message)
	if err != nil {
		return failure("fcm send failed: %v", err)
	}
	return Result{OK: true, ID: id}
}
