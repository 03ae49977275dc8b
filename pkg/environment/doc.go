// Package environment names the deployment environment (development,
// staging, production) and carries it through context.Context.
//
// Parse accepts the long names and the "dev", "stage" and "prod" short forms.
// Environment implements encoding.TextUnmarshaler so it can be a field of a
// config struct loaded from FORMCHECK_ENV. LoggerExtractor adds the value to
// structured logs:
//
//	ctx = environment.WithContext(ctx, cfg.Env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // env=development
package environment
