package mapper

import (
	"github.com/nour-apps/nursery-core/internal/dto"
	"github.com/nour-apps/nursery-core/internal/models"
)

func TrainingToolToDTO(record *models.TrainingTool) *dto.TrainingTool {
	return &dto.TrainingTool{
		ID:        record.ID,
		Name:      record.Name,
		Quantity:  record.Quantity,
		ToolImage: record.ToolImage,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func NewTrainingToolFromCreate(in dto.CreateTrainingTool) *models.TrainingTool {
	return &models.TrainingTool{
		Name:      in.Name,
		Quantity:  in.Quantity,
		ToolImage: in.ToolImage,
		Notes:     in.Notes,
	}
}

func ApplyTrainingToolPatch(record *models.TrainingTool, patch dto.UpdateTrainingTool) *models.TrainingTool {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Quantity != nil {
		record.Quantity = *patch.Quantity
	}
	if patch.ToolImage != nil {
		record.ToolImage = *patch.ToolImage
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}

func ToolForSaleToDTO(record *models.ToolForSale) *dto.ToolForSale {
	return &dto.ToolForSale{
		ID:        record.ID,
		Name:      record.Name,
		Price:     record.Price,
		Quantity:  record.Quantity,
		ToolImage: record.ToolImage,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func NewToolForSaleFromCreate(in dto.CreateToolForSale) *models.ToolForSale {
	return &models.ToolForSale{
		Name:      in.Name,
		Price:     in.Price,
		Quantity:  in.Quantity,
		ToolImage: in.ToolImage,
		Notes:     in.Notes,
	}
}

func ApplyToolForSalePatch(record *models.ToolForSale, patch dto.UpdateToolForSale) *models.ToolForSale {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Quantity != nil {
		record.Quantity = *patch.Quantity
	}
	if patch.ToolImage != nil {
		record.ToolImage = *patch.ToolImage
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}

func UniformForSaleToDTO(record *models.UniformForSale) *dto.UniformForSale {
	return &dto.UniformForSale{
		ID:        record.ID,
		Name:      record.Name,
		Size:      record.Size,
		Price:     record.Price,
		Quantity:  record.Quantity,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func NewUniformForSaleFromCreate(in dto.CreateUniformForSale) *models.UniformForSale {
	return &models.UniformForSale{
		Name:     in.Name,
		Size:     in.Size,
		Price:    in.Price,
		Quantity: in.Quantity,
		Notes:    in.Notes,
	}
}

func ApplyUniformForSalePatch(record *models.UniformForSale, patch dto.UpdateUniformForSale) *models.UniformForSale {
	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Size != nil {
		record.Size = *patch.Size
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Quantity != nil {
		record.Quantity = *patch.Quantity
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}

func BookForSaleToDTO(record *models.BookForSale) *dto.BookForSale {
	return &dto.BookForSale{
		ID:        record.ID,
		Title:     record.Title,
		Price:     record.Price,
		Quantity:  record.Quantity,
		BookImage: record.BookImage,
		Notes:     record.Notes,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func NewBookForSaleFromCreate(in dto.CreateBookForSale) *models.BookForSale {
	return &models.BookForSale{
		Title:     in.Title,
		Price:     in.Price,
		Quantity:  in.Quantity,
		BookImage: in.BookImage,
		Notes:     in.Notes,
	}
}

func ApplyBookForSalePatch(record *models.BookForSale, patch dto.UpdateBookForSale) *models.BookForSale {
	if patch.Title != nil {
		record.Title = *patch.Title
	}
	if patch.Price != nil {
		record.Price = *patch.Price
	}
	if patch.Quantity != nil {
		record.Quantity = *patch.Quantity
	}
	if patch.BookImage != nil {
		record.BookImage = *patch.BookImage
	}
	if patch.Notes != nil {
		record.Notes = *patch.Notes
	}
	return record
}
