// Package environment carries the deployment environment (development,
// staging or production) through context.Context and into structured logs.
//
// Parse accepts the long names and the short aliases dev, stage and prod,
// falling back to Development. WithContext and FromContext store and read the
// value; LoggerExtractor plugs it into the logger package:
//
//	ctx = environment.WithContext(ctx, environment.Parse(cfg.Env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values result in the zero value ("").
package environment
