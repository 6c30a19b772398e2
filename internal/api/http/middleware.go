package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/siga-edu/academic-service/internal/observability"
	apperrors "github.com/siga-edu/academic-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and
// logging. The request logger wraps the error middleware so it observes the
// status after failures have been mapped to the error envelope.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, development bool) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics, development))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware converts every failure into the single error
// envelope the API speaks. Unclassified errors render a generic message;
// their cause reaches the response only in development mode.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, development bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				if metrics != nil {
					metrics.RecordError(c.Path(), c.Method(), domainErr.Code)
				}

				response := fiber.Map{
					"statusCode": domainErr.HTTPStatus,
					"error":      domainErr.Code,
					"message":    domainErr.Message,
					"timestamp":  time.Now().UTC().Format(time.RFC3339),
					"path":       c.Path(),
				}
				if len(domainErr.Details) > 0 {
					response["details"] = domainErr.Details
				}
				if development && domainErr.Err != nil {
					response["debug"] = domainErr.Err.Error()
				}

				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed",
						zap.String("kind", domainErr.Code),
						zap.String("method", c.Method()),
						zap.String("path", c.Path()),
						zap.ByteString("query", c.Request().URI().QueryString()),
						zap.Error(domainErr),
					)
				} else {
					logger.Warn("request rejected",
						zap.String("kind", domainErr.Code),
						zap.Int("status", domainErr.HTTPStatus),
						zap.String("method", c.Method()),
						zap.String("path", c.Path()),
					)
				}

				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
