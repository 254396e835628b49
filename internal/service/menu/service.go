package menu

import (
	"context"

	menuDomain "github.com/mealroll/console-backend-go/internal/domain/menu"
	"github.com/mealroll/console-backend-go/internal/pkg/jwt"
	"github.com/mealroll/console-backend-go/internal/upstream"
)

type MenuServiceImpl struct {
	backend *upstream.Client
}

func NewMenuService(backend *upstream.Client) menuDomain.MenuService {
	return &MenuServiceImpl{backend: backend}
}

func (s *MenuServiceImpl) ListMenus(ctx context.Context) ([]menuDomain.FoodMenu, error) {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return nil, err
	}

	menus, err := s.backend.ListMenus(ctx, token)
	if err != nil {
		return nil, err
	}
	if menus == nil {
		menus = []menuDomain.FoodMenu{}
	}
	return menus, nil
}

func (s *MenuServiceImpl) CreateMenu(ctx context.Context, req menuDomain.CreateMenuRequest) (menuDomain.FoodMenu, error) {
	if err := req.Validate(); err != nil {
		return menuDomain.FoodMenu{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return menuDomain.FoodMenu{}, err
	}

	return s.backend.CreateMenu(ctx, token, req)
}

func (s *MenuServiceImpl) UpdateMenu(ctx context.Context, req menuDomain.UpdateMenuRequest) (menuDomain.FoodMenu, error) {
	if err := req.Validate(); err != nil {
		return menuDomain.FoodMenu{}, err
	}

	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return menuDomain.FoodMenu{}, err
	}

	updated, err := s.backend.UpdateMenu(ctx, token, req)
	if err != nil {
		if upstream.IsNotFound(err) {
			return menuDomain.FoodMenu{}, menuDomain.ErrMenuNotFound
		}
		return menuDomain.FoodMenu{}, err
	}
	return updated, nil
}

func (s *MenuServiceImpl) DeleteMenu(ctx context.Context, id int) error {
	token, err := jwt.UpstreamToken(ctx)
	if err != nil {
		return err
	}

	if err := s.backend.DeleteMenu(ctx, token, id); err != nil {
		if upstream.IsNotFound(err) {
			return menuDomain.ErrMenuNotFound
		}
		return err
	}
	return nil
}
