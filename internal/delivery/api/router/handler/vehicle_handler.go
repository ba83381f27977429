package handler

import (
	"io"
	"log/slog"
	"net/http"

	"autobid/internal/delivery/api/response"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/errors"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const logoField = "logo"

// VehicleHandlerParams holds dependencies for VehicleHandler, injected by Fx.
type VehicleHandlerParams struct {
	fx.In

	VehicleUC usecase.VehicleUsecase
	Logger    *slog.Logger
}

// VehicleHandler serves the brand/model/variant taxonomy
type VehicleHandler struct {
	vehicleUC usecase.VehicleUsecase
	logger    *slog.Logger
}

// NewVehicleHandler is the constructor for VehicleHandler
func NewVehicleHandler(params VehicleHandlerParams) *VehicleHandler {
	return &VehicleHandler{
		vehicleUC: params.VehicleUC,
		logger:    params.Logger,
	}
}

// ListBrands returns every brand.
func (h *VehicleHandler) ListBrands(c echo.Context) error {
	brands, err := h.vehicleUC.ListBrands(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, brands)
}

// CreateBrand adds a brand.
func (h *VehicleHandler) CreateBrand(c echo.Context) error {
	var input usecase.BrandInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	brand, err := h.vehicleUC.CreateBrand(c.Request().Context(), &input)

	return response.Action(c, brand, err)
}

// UpdateBrand edits a brand.
func (h *VehicleHandler) UpdateBrand(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.BrandInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	brand, err := h.vehicleUC.UpdateBrand(c.Request().Context(), id, &input)

	return response.Action(c, brand, err)
}

// DeleteBrand removes a brand.
func (h *VehicleHandler) DeleteBrand(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return response.Action(c, nil, h.vehicleUC.DeleteBrand(c.Request().Context(), id))
}

// UploadBrandLogo stores the multipart "logo" file and links it to the brand.
func (h *VehicleHandler) UploadBrandLogo(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile(logoField)
	if err != nil {
		return response.Action(c, nil, domainerrors.ErrInvalidFile.WrapMessage("missing logo file"))
	}
	file, err := header.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	brand, err := h.vehicleUC.UploadBrandLogo(c.Request().Context(), id, &usecase.LogoUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	})

	return response.Action(c, brand, err)
}

// ListModels returns models, optionally of one brand.
func (h *VehicleHandler) ListModels(c echo.Context) error {
	brandID, err := optionalQueryID(c, "brand_id")
	if err != nil {
		return err
	}

	models, err := h.vehicleUC.ListModels(c.Request().Context(), brandID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, models)
}

// CreateModel adds a model.
func (h *VehicleHandler) CreateModel(c echo.Context) error {
	var input usecase.ModelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	vehicleModel, err := h.vehicleUC.CreateModel(c.Request().Context(), &input)

	return response.Action(c, vehicleModel, err)
}

// UpdateModel edits a model.
func (h *VehicleHandler) UpdateModel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ModelInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	vehicleModel, err := h.vehicleUC.UpdateModel(c.Request().Context(), id, &input)

	return response.Action(c, vehicleModel, err)
}

// DeleteModel removes a model.
func (h *VehicleHandler) DeleteModel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return response.Action(c, nil, h.vehicleUC.DeleteModel(c.Request().Context(), id))
}

// ListVariants returns variants, optionally of one model.
func (h *VehicleHandler) ListVariants(c echo.Context) error {
	modelID, err := optionalQueryID(c, "model_id")
	if err != nil {
		return err
	}

	variants, err := h.vehicleUC.ListVariants(c.Request().Context(), modelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, variants)
}

// CreateVariant adds a variant.
func (h *VehicleHandler) CreateVariant(c echo.Context) error {
	var input usecase.VariantInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	variant, err := h.vehicleUC.CreateVariant(c.Request().Context(), &input)

	return response.Action(c, variant, err)
}

// UpdateVariant edits a variant.
func (h *VehicleHandler) UpdateVariant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.VariantInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	variant, err := h.vehicleUC.UpdateVariant(c.Request().Context(), id, &input)

	return response.Action(c, variant, err)
}

// DeleteVariant removes a variant.
func (h *VehicleHandler) DeleteVariant(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return response.Action(c, nil, h.vehicleUC.DeleteVariant(c.Request().Context(), id))
}
