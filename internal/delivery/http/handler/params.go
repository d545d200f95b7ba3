package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tourism-directory/internal/pkg/errors"
	"github.com/tourism-directory/internal/pkg/validator"
)

// paramID - положительный int64 из параметра пути
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.ErrInvalidRequest.WithMessage("Invalid " + name + " parameter")
	}
	return id, nil
}

// paramString - параметр пути после URL-декодирования (email коллаборатора)
func paramString(c *fiber.Ctx, name string) (string, error) {
	v, err := url.PathUnescape(c.Params(name))
	if err != nil || v == "" {
		return "", errors.ErrInvalidRequest.WithMessage("Invalid " + name + " parameter")
	}
	return v, nil
}

// parseBody разбирает JSON тело и валидирует его по тегам
func parseBody(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	return validator.Validate(dst)
}
