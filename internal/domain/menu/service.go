package menu

import "context"

type MenuService interface {
	ListMenus(ctx context.Context) ([]FoodMenu, error)
	CreateMenu(ctx context.Context, req CreateMenuRequest) (FoodMenu, error)
	UpdateMenu(ctx context.Context, req UpdateMenuRequest) (FoodMenu, error)
	DeleteMenu(ctx context.Context, id int) error
}
