package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/tienda-api/internal/application/dto"
	appinv "github.com/tu-usuario/tienda-api/internal/application/inventory"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	"github.com/tu-usuario/tienda-api/internal/domain/inventory"
	"github.com/tu-usuario/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Los saldos no se editan
// directamente: nacen con el movimiento inicial y cambian solo vía movimientos.
type ProductUseCase struct {
	txRunner     appinv.TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	categoryRepo repository.CategoryRepository
	orderRepo    repository.OrderRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner appinv.TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	categoryRepo repository.CategoryRepository,
	orderRepo repository.OrderRepository,
) *ProductUseCase {
	return &ProductUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
		orderRepo:    orderRepo,
	}
}

// Create crea un producto y siembra su saldo inicial con un movimiento de
// entrada en la ubicación indicada, todo en una transacción. Si el creador es
// vendedor, queda como dueño del producto.
func (uc *ProductUseCase) Create(ctx context.Context, actorID, actorRole string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidLocation(in.Location) {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQty < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Location:      in.Location,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		ImageURL:      in.ImageURL,
		PurchaseCost:  in.PurchaseCost,
		WarehouseSlot: in.WarehouseSlot,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if actorRole == entity.RoleVendedor {
		product.SellerID = &actorID
	}

	// El saldo inicial entra por el libro para que el snapshot del primer
	// movimiento coincida con los saldos del producto recién creado.
	seed := &entity.Movement{
		ID:         uuid.New().String(),
		ProductID:  product.ID,
		Type:       entity.MovementIn,
		Quantity:   in.InitialQty,
		ToLocation: in.Location,
		Note:       "Registro inicial",
		CreatedAt:  now,
		CreatedBy:  actorID,
	}
	next, err := inventory.Apply(inventory.Balances{}, seed)
	if err != nil {
		return nil, err
	}
	product.Stock = next.Stock
	product.WarehouseQty = next.Warehouse

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return movementRepo.Create(seed)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos, opcionalmente filtrados por ubicación con saldo > 0.
func (uc *ProductUseCase) List(ctx context.Context, location string, page dto.PageRequest) ([]dto.ProductResponse, error) {
	if location != "" && !entity.ValidLocation(location) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.productRepo.List(repository.ProductFilter{
		Location:   location,
		OnlyActive: true,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza campos del producto. Los saldos no se tocan aquí.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.PurchaseCost != nil {
		product.PurchaseCost = in.PurchaseCost
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Si algún pedido lo referencia, no se borra: se
// deshabilita para preservar el historial.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	referenced, err := uc.orderRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return uc.productRepo.SetActive(id, false)
	}
	return uc.productRepo.Delete(id)
}

// GetMovements devuelve el historial de movimientos de un producto.
func (uc *ProductUseCase) GetMovements(ctx context.Context, productID string) ([]dto.MovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, dto.MovementResponse{
			ID:             m.ID,
			Type:           m.Type,
			Quantity:       m.Quantity,
			FromLocation:   m.FromLocation,
			ToLocation:     m.ToLocation,
			Note:           m.Note,
			StockAfter:     m.StockAfter,
			WarehouseAfter: m.WarehouseAfter,
			CreatedAt:      m.CreatedAt,
			CreatedBy:      m.CreatedBy,
		})
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		WarehouseQty:  p.WarehouseQty,
		Location:      p.Location,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		SellerID:      p.SellerID,
		ImageURL:      p.ImageURL,
		PurchaseCost:  p.PurchaseCost,
		WarehouseSlot: p.WarehouseSlot,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
