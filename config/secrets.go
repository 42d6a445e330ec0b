package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// secretKeys are the environment variables that may be stored in SSM
// Parameter Store instead of the process environment. Each maps to the
// parameter "<SSM_PARAMETER_PREFIX>/<lowercased key>".
var secretKeys = []string{
	"OPENAI_API_KEY",
	"DESCOPE_PROJECT_ID",
	"JWT_SECRET",
	"TWILIO_AUTH_TOKEN",
	"DB_PASSWORD",
}

// HydrateSecrets fills missing secret environment variables from SSM
// Parameter Store. It is a no-op unless SSM_PARAMETER_PREFIX is set, so
// local development keeps working off a plain .env file. A parameter that
// cannot be read is logged and skipped; the request that needs it will
// fail later with a configuration error.
func HydrateSecrets() error {
	prefix := os.Getenv("SSM_PARAMETER_PREFIX")
	if prefix == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("loading AWS config: %w", err)
	}
	client := ssm.NewFromConfig(awsCfg)

	for _, key := range secretKeys {
		if os.Getenv(key) != "" {
			continue
		}

		name := strings.TrimSuffix(prefix, "/") + "/" + strings.ToLower(key)
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			log.Warn().Err(err).Str("parameter", name).Msg("Could not read SSM parameter")
			continue
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			continue
		}

		if err := os.Setenv(key, *out.Parameter.Value); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
		log.Info().Str("key", key).Msg("Loaded secret from SSM")
	}

	return nil
}
