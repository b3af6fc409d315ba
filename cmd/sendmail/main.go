// Command sendmail sends a sample temporary password email through SES to
// check the sender identity and credentials.
package main

import (
	"claon/internal/config"
	c "claon/internal/core/domain/common"
	"claon/internal/core/domain/notification"
	"claon/internal/implementations/email"
	"context"
	"flag"
	"fmt"
	"os"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

func main() {
	to := flag.String("to", "", "recipient address")
	flag.Parse()
	if *to == "" {
		fmt.Fprintln(os.Stderr, "usage: sendmail -to address")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(cfg.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AwsAccessKey,
				cfg.AwsSecretKey,
				"",
			),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	sender := email.NewEmailSender(awsCfg, cfg.AwsEmailSender)
	err = sender.Send(
		context.Background(),
		notification.NewTemporaryPasswordEmail(c.NewEmail(*to), "Sample1234!Password&1Z"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Success")
}
