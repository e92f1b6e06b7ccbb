package handler

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"heroapi/internal/http/middleware"
	"heroapi/internal/model"
	"heroapi/internal/service"
)

// superheroResponse is the output schema of a superhero.
type superheroResponse struct {
	ID              string    `json:"id"`
	Slug            string    `json:"slug"`
	Name            string    `json:"name"`
	RealName        string    `json:"real_name"`
	Publisher       string    `json:"publisher"`
	FirstAppearance string    `json:"first_appearance"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newSuperheroResponse(h *model.Superhero) superheroResponse {
	return superheroResponse{
		ID:              h.ID,
		Slug:            h.Slug,
		Name:            h.Name,
		RealName:        h.RealName,
		Publisher:       h.Publisher,
		FirstAppearance: h.FirstAppearance,
		Description:     h.Description,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

type superheroListResponse struct {
	Items []superheroResponse `json:"data"`
	Total int                 `json:"total"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// SlugValidator checks slug path parameters when strict slugs are enabled.
type SlugValidator struct {
	v *validator.Validate
}

// NewSlugValidator registers the "slug" tag: lowercase alphanumerics separated by single dashes.
func NewSlugValidator() *SlugValidator {
	v := validator.New()
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return &SlugValidator{v: v}
}

// Validate returns an error when slug is empty, longer than 128 bytes or badly formed.
func (s *SlugValidator) Validate(slug string) error {
	return s.v.Var(slug, "required,max=128,slug")
}

// slugParam reads the slug path parameter. A nil validator passes the value through untouched.
func slugParam(c *fiber.Ctx, sv *SlugValidator) (string, error) {
	slug := utils.CopyString(c.Params("slug"))
	if sv != nil {
		if err := sv.Validate(slug); err != nil {
			return "", NewAPIError(fiber.StatusBadRequest, "INVALID_SLUG", "invalid slug format").With("slug", slug)
		}
	}
	return slug, nil
}

// GetSuperheroBySlug godoc
//
//	@Summary	Fetch a superhero given its slug
//	@Tags		superheroes
//	@Produce	json
//	@Param		slug	path		string	true	"The superhero's slug"
//	@Success	200		{object}	superheroResponse
//	@Failure	404		{object}	map[string]any	"Superhero not found"
//	@Router		/superheroes/slug/{slug} [get]
func GetSuperheroBySlug(svc service.SuperheroService, sv *SlugValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug, err := slugParam(c, sv)
		if err != nil {
			return err
		}

		middleware.GetLogger(c).Info().Str("slug", slug).Msg("fetching superhero")
		trace.SpanFromContext(c.UserContext()).SetAttributes(attribute.String("superhero.slug", slug))

		hero, err := svc.GetBySlug(c.UserContext(), slug)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return errSuperheroNotFound(slug)
			}
			return err
		}
		return c.JSON(newSuperheroResponse(hero))
	}
}

// ListSuperheroes godoc
//
//	@Summary	List superheroes ordered by name
//	@Tags		superheroes
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (default 10, max 100)"
//	@Param		offset	query		int	false	"Rows to skip"
//	@Success	200		{object}	superheroListResponse
//	@Failure	400		{object}	map[string]any
//	@Router		/superheroes [get]
func ListSuperheroes(svc service.SuperheroService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return NewAPIError(fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return NewAPIError(fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return err
		}

		out := superheroListResponse{Items: make([]superheroResponse, 0, len(res.Items)), Total: res.Total}
		for i := range res.Items {
			out.Items = append(out.Items, newSuperheroResponse(&res.Items[i]))
		}
		return c.JSON(out)
	}
}

// GetSuperheroPortrait godoc
//
//	@Summary	Redirect to a short-lived download URL of the superhero's portrait
//	@Tags		superheroes
//	@Param		slug	path	string	true	"The superhero's slug"
//	@Success	302
//	@Failure	404	{object}	map[string]any	"Superhero or portrait not found"
//	@Failure	503	{object}	map[string]any	"Portrait storage not configured"
//	@Router		/superheroes/slug/{slug}/portrait [get]
func GetSuperheroPortrait(svc service.SuperheroService, sv *SlugValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug, err := slugParam(c, sv)
		if err != nil {
			return err
		}

		u, err := svc.PortraitURL(c.UserContext(), slug)
		switch {
		case err == nil:
			return c.Redirect(u, fiber.StatusFound)
		case errors.Is(err, service.ErrPortraitsDisabled):
			return NewAPIError(fiber.StatusServiceUnavailable, "PORTRAITS_DISABLED", "portrait storage is not configured")
		case errors.Is(err, service.ErrNotFound):
			return errSuperheroNotFound(slug)
		case errors.Is(err, service.ErrPortraitNotFound):
			return NewAPIError(fiber.StatusNotFound, "PORTRAIT_NOT_FOUND", "portrait not found").With("slug", slug)
		default:
			return err
		}
	}
}
