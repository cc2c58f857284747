package cmd

import (
	"context"
	"fmt"

	"kitcart/internal/adapters/out/memory"
	"kitcart/internal/core/application/usecases/commands"
	"kitcart/internal/core/application/usecases/queries"
	"kitcart/internal/core/domain/model/kernel"
	"kitcart/internal/core/domain/model/staff"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory memory.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		store:      store,
		uowFactory: *memory.NewUnitOfWorkFactory(store),
	}
}

// SeedStaffRoster populates the initial delivery roster.
// The storefront boots with three staff members, all available.
func (c *CompositionRoot) SeedStaffRoster(ctx context.Context) error {
	roster := []struct {
		name  string
		phone string
	}{
		{"Ramesh Kumar", "9988776655"},
		{"Suresh Singh", "8877665544"},
		{"Amit Verma", "7766554433"},
	}

	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	for _, entry := range roster {
		member, err := staff.NewStaff(kernel.NewUUID(), entry.name, entry.phone)
		if err != nil {
			return fmt.Errorf("failed to build staff member %q: %w", entry.name, err)
		}
		if err = staffRepo.Add(ctx, member); err != nil {
			return fmt.Errorf("failed to seed staff member %q: %w", entry.name, err)
		}
	}

	return uow.Commit(ctx)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveCartItemCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeCartItemQuantityCommandHandler() commands.ChangeCartItemQuantityCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCartItemQuantityCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignStaffCommandHandler() commands.AssignStaffCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleStaffCommandHandler() commands.ToggleStaffCommandHandler {
	var f commands.StaffUoWFactory = FuncStaffUoWFactory(func() commands.StaffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleStaffCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllStaffQueryHandler() queries.GetAllStaffQueryHandler {
	return queries.NewGetAllStaffQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAvailableStaffQueryHandler() queries.GetAvailableStaffQueryHandler {
	return queries.NewGetAvailableStaffQueryHandler(c.store)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
