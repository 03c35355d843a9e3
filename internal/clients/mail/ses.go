package mail

import (
	"boatshow-server/internal/observability"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESAPI is the subset of the SES v2 client used to send mail
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type SESClient struct {
	api    SESAPI
	logger *observability.Logger
}

func NewSESClient(awsCfg aws.Config, logger *observability.Logger) *SESClient {
	return NewSESClientWithAPI(sesv2.NewFromConfig(awsCfg), logger)
}

func NewSESClientWithAPI(api SESAPI, logger *observability.Logger) *SESClient {
	return &SESClient{api: api, logger: logger}
}

func (c *SESClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_to", Value: to},
		observability.Field{Key: "email_subject", Value: subject},
		observability.Field{Key: "mail_provider", Value: "ses"},
	)

	out, err := c.api.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlContent), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send email", err)
		return "", fmt.Errorf("ses: failed to send email: %w", err)
	}

	c.logger.Info(ctx, "email sent successfully")
	return aws.ToString(out.MessageId), nil
}
