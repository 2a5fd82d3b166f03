package gateway

import (
	"context"
	"sync"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

var _ courseRepo = &courseRepoMock{}

type courseRepoMock struct {
	GetByIDFunc    func(context.Context, int64) (domain.Course, error)
	FindByKeysFunc func(context.Context, string, string) ([]domain.Course, error)
	CreateFunc     func(context.Context, domain.Course) (domain.Course, error)
	UpdateFunc     func(context.Context, domain.Course) (domain.Course, error)
	ExistsFunc     func(context.Context, int64) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		FindByKeys []struct {
			Ctx       context.Context
			Shortname string
			Idnumber  string
		}
		Create []struct {
			Ctx context.Context
			C   domain.Course
		}
		Update []struct {
			Ctx context.Context
			C   domain.Course
		}
		Exists []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID    sync.RWMutex
	lockFindByKeys sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockExists     sync.RWMutex
}

func (mock *courseRepoMock) GetByID(ctx context.Context, id int64) (domain.Course, error) {
	if mock.GetByIDFunc == nil {
		panic("courseRepoMock.GetByIDFunc: method is nil but courseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *courseRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *courseRepoMock) FindByKeys(ctx context.Context, shortname string, idnumber string) ([]domain.Course, error) {
	if mock.FindByKeysFunc == nil {
		panic("courseRepoMock.FindByKeysFunc: method is nil but courseRepo.FindByKeys was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Shortname string
		Idnumber  string
	}{
		Ctx:       ctx,
		Shortname: shortname,
		Idnumber:  idnumber,
	}
	mock.lockFindByKeys.Lock()
	mock.calls.FindByKeys = append(mock.calls.FindByKeys, callInfo)
	mock.lockFindByKeys.Unlock()
	return mock.FindByKeysFunc(ctx, shortname, idnumber)
}

func (mock *courseRepoMock) FindByKeysCalls() []struct {
	Ctx       context.Context
	Shortname string
	Idnumber  string
} {
	mock.lockFindByKeys.RLock()
	calls := mock.calls.FindByKeys
	mock.lockFindByKeys.RUnlock()
	return calls
}

func (mock *courseRepoMock) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	if mock.CreateFunc == nil {
		panic("courseRepoMock.CreateFunc: method is nil but courseRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Course
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *courseRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Course
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *courseRepoMock) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	if mock.UpdateFunc == nil {
		panic("courseRepoMock.UpdateFunc: method is nil but courseRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Course
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *courseRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   domain.Course
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *courseRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("courseRepoMock.ExistsFunc: method is nil but courseRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *courseRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc      func(context.Context, int64) (domain.GradeCategory, error)
	ListByCourseFunc func(context.Context, int64) ([]domain.GradeCategory, error)
	CreateFunc       func(context.Context, domain.GradeCategory) (domain.GradeCategory, error)
	UpdateFunc       func(context.Context, domain.GradeCategory) (domain.GradeCategory, error)
	SetPlacementFunc func(context.Context, domain.CategoryMove) error
	ApplyMovesFunc   func(context.Context, []domain.CategoryMove) error
	DeleteFunc       func(context.Context, int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByCourse []struct {
			Ctx      context.Context
			CourseID int64
		}
		Create []struct {
			Ctx context.Context
			C   domain.GradeCategory
		}
		Update []struct {
			Ctx context.Context
			C   domain.GradeCategory
		}
		SetPlacement []struct {
			Ctx context.Context
			M   domain.CategoryMove
		}
		ApplyMoves []struct {
			Ctx   context.Context
			Moves []domain.CategoryMove
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID      sync.RWMutex
	lockListByCourse sync.RWMutex
	lockCreate       sync.RWMutex
	lockUpdate       sync.RWMutex
	lockSetPlacement sync.RWMutex
	lockApplyMoves   sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id int64) (domain.GradeCategory, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) ListByCourse(ctx context.Context, courseID int64) ([]domain.GradeCategory, error) {
	if mock.ListByCourseFunc == nil {
		panic("categoryRepoMock.ListByCourseFunc: method is nil but categoryRepo.ListByCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID int64
	}{
		Ctx:      ctx,
		CourseID: courseID,
	}
	mock.lockListByCourse.Lock()
	mock.calls.ListByCourse = append(mock.calls.ListByCourse, callInfo)
	mock.lockListByCourse.Unlock()
	return mock.ListByCourseFunc(ctx, courseID)
}

func (mock *categoryRepoMock) ListByCourseCalls() []struct {
	Ctx      context.Context
	CourseID int64
} {
	mock.lockListByCourse.RLock()
	calls := mock.calls.ListByCourse
	mock.lockListByCourse.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.GradeCategory
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.GradeCategory
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, c domain.GradeCategory) (domain.GradeCategory, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.GradeCategory
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   domain.GradeCategory
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) SetPlacement(ctx context.Context, m domain.CategoryMove) error {
	if mock.SetPlacementFunc == nil {
		panic("categoryRepoMock.SetPlacementFunc: method is nil but categoryRepo.SetPlacement was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.CategoryMove
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockSetPlacement.Lock()
	mock.calls.SetPlacement = append(mock.calls.SetPlacement, callInfo)
	mock.lockSetPlacement.Unlock()
	return mock.SetPlacementFunc(ctx, m)
}

func (mock *categoryRepoMock) SetPlacementCalls() []struct {
	Ctx context.Context
	M   domain.CategoryMove
} {
	mock.lockSetPlacement.RLock()
	calls := mock.calls.SetPlacement
	mock.lockSetPlacement.RUnlock()
	return calls
}

func (mock *categoryRepoMock) ApplyMoves(ctx context.Context, moves []domain.CategoryMove) error {
	if mock.ApplyMovesFunc == nil {
		panic("categoryRepoMock.ApplyMovesFunc: method is nil but categoryRepo.ApplyMoves was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Moves []domain.CategoryMove
	}{
		Ctx:   ctx,
		Moves: moves,
	}
	mock.lockApplyMoves.Lock()
	mock.calls.ApplyMoves = append(mock.calls.ApplyMoves, callInfo)
	mock.lockApplyMoves.Unlock()
	return mock.ApplyMovesFunc(ctx, moves)
}

func (mock *categoryRepoMock) ApplyMovesCalls() []struct {
	Ctx   context.Context
	Moves []domain.CategoryMove
} {
	mock.lockApplyMoves.RLock()
	calls := mock.calls.ApplyMoves
	mock.lockApplyMoves.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *categoryRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc            func(context.Context, int64) (domain.GradeItem, error)
	GetCategoryItemFunc    func(context.Context, int64) (domain.GradeItem, error)
	FindByIDNumberFunc     func(context.Context, int64, string) ([]domain.GradeItem, error)
	ListByCategoryFunc     func(context.Context, int64) ([]domain.GradeItem, error)
	CreateFunc             func(context.Context, domain.GradeItem) (domain.GradeItem, error)
	UpdateFunc             func(context.Context, domain.GradeItem) (domain.GradeItem, error)
	MoveItemsFunc          func(context.Context, int64, *int64, int64) (int64, error)
	DeleteCategoryItemFunc func(context.Context, int64) (int64, error)
	DeleteFunc             func(context.Context, int64) error
	CountByScaleFunc       func(context.Context, int64) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetCategoryItem []struct {
			Ctx        context.Context
			CategoryID int64
		}
		FindByIDNumber []struct {
			Ctx      context.Context
			CourseID int64
			Idnumber string
		}
		ListByCategory []struct {
			Ctx        context.Context
			CategoryID int64
		}
		Create []struct {
			Ctx context.Context
			G   domain.GradeItem
		}
		Update []struct {
			Ctx context.Context
			G   domain.GradeItem
		}
		MoveItems []struct {
			Ctx  context.Context
			From int64
			To   *int64
			Now  int64
		}
		DeleteCategoryItem []struct {
			Ctx        context.Context
			CategoryID int64
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		CountByScale []struct {
			Ctx     context.Context
			ScaleID int64
		}
	}
	lockGetByID            sync.RWMutex
	lockGetCategoryItem    sync.RWMutex
	lockFindByIDNumber     sync.RWMutex
	lockListByCategory     sync.RWMutex
	lockCreate             sync.RWMutex
	lockUpdate             sync.RWMutex
	lockMoveItems          sync.RWMutex
	lockDeleteCategoryItem sync.RWMutex
	lockDelete             sync.RWMutex
	lockCountByScale       sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id int64) (domain.GradeItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetCategoryItem(ctx context.Context, categoryID int64) (domain.GradeItem, error) {
	if mock.GetCategoryItemFunc == nil {
		panic("itemRepoMock.GetCategoryItemFunc: method is nil but itemRepo.GetCategoryItem was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID int64
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockGetCategoryItem.Lock()
	mock.calls.GetCategoryItem = append(mock.calls.GetCategoryItem, callInfo)
	mock.lockGetCategoryItem.Unlock()
	return mock.GetCategoryItemFunc(ctx, categoryID)
}

func (mock *itemRepoMock) GetCategoryItemCalls() []struct {
	Ctx        context.Context
	CategoryID int64
} {
	mock.lockGetCategoryItem.RLock()
	calls := mock.calls.GetCategoryItem
	mock.lockGetCategoryItem.RUnlock()
	return calls
}

func (mock *itemRepoMock) FindByIDNumber(ctx context.Context, courseID int64, idnumber string) ([]domain.GradeItem, error) {
	if mock.FindByIDNumberFunc == nil {
		panic("itemRepoMock.FindByIDNumberFunc: method is nil but itemRepo.FindByIDNumber was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID int64
		Idnumber string
	}{
		Ctx:      ctx,
		CourseID: courseID,
		Idnumber: idnumber,
	}
	mock.lockFindByIDNumber.Lock()
	mock.calls.FindByIDNumber = append(mock.calls.FindByIDNumber, callInfo)
	mock.lockFindByIDNumber.Unlock()
	return mock.FindByIDNumberFunc(ctx, courseID, idnumber)
}

func (mock *itemRepoMock) FindByIDNumberCalls() []struct {
	Ctx      context.Context
	CourseID int64
	Idnumber string
} {
	mock.lockFindByIDNumber.RLock()
	calls := mock.calls.FindByIDNumber
	mock.lockFindByIDNumber.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByCategory(ctx context.Context, categoryID int64) ([]domain.GradeItem, error) {
	if mock.ListByCategoryFunc == nil {
		panic("itemRepoMock.ListByCategoryFunc: method is nil but itemRepo.ListByCategory was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID int64
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockListByCategory.Lock()
	mock.calls.ListByCategory = append(mock.calls.ListByCategory, callInfo)
	mock.lockListByCategory.Unlock()
	return mock.ListByCategoryFunc(ctx, categoryID)
}

func (mock *itemRepoMock) ListByCategoryCalls() []struct {
	Ctx        context.Context
	CategoryID int64
} {
	mock.lockListByCategory.RLock()
	calls := mock.calls.ListByCategory
	mock.lockListByCategory.RUnlock()
	return calls
}

func (mock *itemRepoMock) Create(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.GradeItem
	}{
		Ctx: ctx,
		G:   g,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, g)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx context.Context
	G   domain.GradeItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, g domain.GradeItem) (domain.GradeItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		G   domain.GradeItem
	}{
		Ctx: ctx,
		G:   g,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, g)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	G   domain.GradeItem
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) MoveItems(ctx context.Context, from int64, to *int64, now int64) (int64, error) {
	if mock.MoveItemsFunc == nil {
		panic("itemRepoMock.MoveItemsFunc: method is nil but itemRepo.MoveItems was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		From int64
		To   *int64
		Now  int64
	}{
		Ctx:  ctx,
		From: from,
		To:   to,
		Now:  now,
	}
	mock.lockMoveItems.Lock()
	mock.calls.MoveItems = append(mock.calls.MoveItems, callInfo)
	mock.lockMoveItems.Unlock()
	return mock.MoveItemsFunc(ctx, from, to, now)
}

func (mock *itemRepoMock) MoveItemsCalls() []struct {
	Ctx  context.Context
	From int64
	To   *int64
	Now  int64
} {
	mock.lockMoveItems.RLock()
	calls := mock.calls.MoveItems
	mock.lockMoveItems.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteCategoryItem(ctx context.Context, categoryID int64) (int64, error) {
	if mock.DeleteCategoryItemFunc == nil {
		panic("itemRepoMock.DeleteCategoryItemFunc: method is nil but itemRepo.DeleteCategoryItem was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		CategoryID int64
	}{
		Ctx:        ctx,
		CategoryID: categoryID,
	}
	mock.lockDeleteCategoryItem.Lock()
	mock.calls.DeleteCategoryItem = append(mock.calls.DeleteCategoryItem, callInfo)
	mock.lockDeleteCategoryItem.Unlock()
	return mock.DeleteCategoryItemFunc(ctx, categoryID)
}

func (mock *itemRepoMock) DeleteCategoryItemCalls() []struct {
	Ctx        context.Context
	CategoryID int64
} {
	mock.lockDeleteCategoryItem.RLock()
	calls := mock.calls.DeleteCategoryItem
	mock.lockDeleteCategoryItem.RUnlock()
	return calls
}

func (mock *itemRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc: method is nil but itemRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *itemRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *itemRepoMock) CountByScale(ctx context.Context, scaleID int64) (int, error) {
	if mock.CountByScaleFunc == nil {
		panic("itemRepoMock.CountByScaleFunc: method is nil but itemRepo.CountByScale was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ScaleID int64
	}{
		Ctx:     ctx,
		ScaleID: scaleID,
	}
	mock.lockCountByScale.Lock()
	mock.calls.CountByScale = append(mock.calls.CountByScale, callInfo)
	mock.lockCountByScale.Unlock()
	return mock.CountByScaleFunc(ctx, scaleID)
}

func (mock *itemRepoMock) CountByScaleCalls() []struct {
	Ctx     context.Context
	ScaleID int64
} {
	mock.lockCountByScale.RLock()
	calls := mock.calls.CountByScale
	mock.lockCountByScale.RUnlock()
	return calls
}

var _ tagRepo = &tagRepoMock{}

type tagRepoMock struct {
	GetByIDFunc             func(context.Context, int64) (domain.Tag, error)
	GetByNameFunc           func(context.Context, string) (domain.Tag, error)
	CreateFunc              func(context.Context, domain.Tag) (domain.Tag, error)
	DeleteFunc              func(context.Context, int64) error
	DeleteManyFunc          func(context.Context, []int64) (int64, error)
	DetachTagsFunc          func(context.Context, []int64) (int64, error)
	ListInstancesFunc       func(context.Context, string, int64) ([]domain.TagInstance, error)
	ListInstancesByTagsFunc func(context.Context, []int64) ([]domain.TagInstance, error)
	EnsureInstanceFunc      func(context.Context, int64, string, int64, int64) (bool, error)
	DeleteInstanceFunc      func(context.Context, int64, string, int64) (bool, error)
	InstanceExistsFunc      func(context.Context, int64, string, int64) (bool, error)
	CountInstancesFunc      func(context.Context, int64) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		Create []struct {
			Ctx context.Context
			T   domain.Tag
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		DeleteMany []struct {
			Ctx context.Context
			IDs []int64
		}
		DetachTags []struct {
			Ctx context.Context
			IDs []int64
		}
		ListInstances []struct {
			Ctx      context.Context
			ItemType string
			ItemID   int64
		}
		ListInstancesByTags []struct {
			Ctx    context.Context
			TagIDs []int64
		}
		EnsureInstance []struct {
			Ctx      context.Context
			TagID    int64
			ItemType string
			ItemID   int64
			Now      int64
		}
		DeleteInstance []struct {
			Ctx      context.Context
			TagID    int64
			ItemType string
			ItemID   int64
		}
		InstanceExists []struct {
			Ctx      context.Context
			TagID    int64
			ItemType string
			ItemID   int64
		}
		CountInstances []struct {
			Ctx   context.Context
			TagID int64
		}
	}
	lockGetByID             sync.RWMutex
	lockGetByName           sync.RWMutex
	lockCreate              sync.RWMutex
	lockDelete              sync.RWMutex
	lockDeleteMany          sync.RWMutex
	lockDetachTags          sync.RWMutex
	lockListInstances       sync.RWMutex
	lockListInstancesByTags sync.RWMutex
	lockEnsureInstance      sync.RWMutex
	lockDeleteInstance      sync.RWMutex
	lockInstanceExists      sync.RWMutex
	lockCountInstances      sync.RWMutex
}

func (mock *tagRepoMock) GetByID(ctx context.Context, id int64) (domain.Tag, error) {
	if mock.GetByIDFunc == nil {
		panic("tagRepoMock.GetByIDFunc: method is nil but tagRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *tagRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *tagRepoMock) GetByName(ctx context.Context, name string) (domain.Tag, error) {
	if mock.GetByNameFunc == nil {
		panic("tagRepoMock.GetByNameFunc: method is nil but tagRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *tagRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *tagRepoMock) Create(ctx context.Context, t domain.Tag) (domain.Tag, error) {
	if mock.CreateFunc == nil {
		panic("tagRepoMock.CreateFunc: method is nil but tagRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   domain.Tag
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *tagRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   domain.Tag
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tagRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("tagRepoMock.DeleteFunc: method is nil but tagRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *tagRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *tagRepoMock) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if mock.DeleteManyFunc == nil {
		panic("tagRepoMock.DeleteManyFunc: method is nil but tagRepo.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, ids)
}

func (mock *tagRepoMock) DeleteManyCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockDeleteMany.RLock()
	calls := mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}

func (mock *tagRepoMock) DetachTags(ctx context.Context, ids []int64) (int64, error) {
	if mock.DetachTagsFunc == nil {
		panic("tagRepoMock.DetachTagsFunc: method is nil but tagRepo.DetachTags was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []int64
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockDetachTags.Lock()
	mock.calls.DetachTags = append(mock.calls.DetachTags, callInfo)
	mock.lockDetachTags.Unlock()
	return mock.DetachTagsFunc(ctx, ids)
}

func (mock *tagRepoMock) DetachTagsCalls() []struct {
	Ctx context.Context
	IDs []int64
} {
	mock.lockDetachTags.RLock()
	calls := mock.calls.DetachTags
	mock.lockDetachTags.RUnlock()
	return calls
}

func (mock *tagRepoMock) ListInstances(ctx context.Context, itemType string, itemID int64) ([]domain.TagInstance, error) {
	if mock.ListInstancesFunc == nil {
		panic("tagRepoMock.ListInstancesFunc: method is nil but tagRepo.ListInstances was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ItemType string
		ItemID   int64
	}{
		Ctx:      ctx,
		ItemType: itemType,
		ItemID:   itemID,
	}
	mock.lockListInstances.Lock()
	mock.calls.ListInstances = append(mock.calls.ListInstances, callInfo)
	mock.lockListInstances.Unlock()
	return mock.ListInstancesFunc(ctx, itemType, itemID)
}

func (mock *tagRepoMock) ListInstancesCalls() []struct {
	Ctx      context.Context
	ItemType string
	ItemID   int64
} {
	mock.lockListInstances.RLock()
	calls := mock.calls.ListInstances
	mock.lockListInstances.RUnlock()
	return calls
}

func (mock *tagRepoMock) ListInstancesByTags(ctx context.Context, tagIDs []int64) ([]domain.TagInstance, error) {
	if mock.ListInstancesByTagsFunc == nil {
		panic("tagRepoMock.ListInstancesByTagsFunc: method is nil but tagRepo.ListInstancesByTags was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TagIDs []int64
	}{
		Ctx:    ctx,
		TagIDs: tagIDs,
	}
	mock.lockListInstancesByTags.Lock()
	mock.calls.ListInstancesByTags = append(mock.calls.ListInstancesByTags, callInfo)
	mock.lockListInstancesByTags.Unlock()
	return mock.ListInstancesByTagsFunc(ctx, tagIDs)
}

func (mock *tagRepoMock) ListInstancesByTagsCalls() []struct {
	Ctx    context.Context
	TagIDs []int64
} {
	mock.lockListInstancesByTags.RLock()
	calls := mock.calls.ListInstancesByTags
	mock.lockListInstancesByTags.RUnlock()
	return calls
}

func (mock *tagRepoMock) EnsureInstance(ctx context.Context, tagID int64, itemType string, itemID int64, now int64) (bool, error) {
	if mock.EnsureInstanceFunc == nil {
		panic("tagRepoMock.EnsureInstanceFunc: method is nil but tagRepo.EnsureInstance was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TagID    int64
		ItemType string
		ItemID   int64
		Now      int64
	}{
		Ctx:      ctx,
		TagID:    tagID,
		ItemType: itemType,
		ItemID:   itemID,
		Now:      now,
	}
	mock.lockEnsureInstance.Lock()
	mock.calls.EnsureInstance = append(mock.calls.EnsureInstance, callInfo)
	mock.lockEnsureInstance.Unlock()
	return mock.EnsureInstanceFunc(ctx, tagID, itemType, itemID, now)
}

func (mock *tagRepoMock) EnsureInstanceCalls() []struct {
	Ctx      context.Context
	TagID    int64
	ItemType string
	ItemID   int64
	Now      int64
} {
	mock.lockEnsureInstance.RLock()
	calls := mock.calls.EnsureInstance
	mock.lockEnsureInstance.RUnlock()
	return calls
}

func (mock *tagRepoMock) DeleteInstance(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error) {
	if mock.DeleteInstanceFunc == nil {
		panic("tagRepoMock.DeleteInstanceFunc: method is nil but tagRepo.DeleteInstance was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TagID    int64
		ItemType string
		ItemID   int64
	}{
		Ctx:      ctx,
		TagID:    tagID,
		ItemType: itemType,
		ItemID:   itemID,
	}
	mock.lockDeleteInstance.Lock()
	mock.calls.DeleteInstance = append(mock.calls.DeleteInstance, callInfo)
	mock.lockDeleteInstance.Unlock()
	return mock.DeleteInstanceFunc(ctx, tagID, itemType, itemID)
}

func (mock *tagRepoMock) DeleteInstanceCalls() []struct {
	Ctx      context.Context
	TagID    int64
	ItemType string
	ItemID   int64
} {
	mock.lockDeleteInstance.RLock()
	calls := mock.calls.DeleteInstance
	mock.lockDeleteInstance.RUnlock()
	return calls
}

func (mock *tagRepoMock) InstanceExists(ctx context.Context, tagID int64, itemType string, itemID int64) (bool, error) {
	if mock.InstanceExistsFunc == nil {
		panic("tagRepoMock.InstanceExistsFunc: method is nil but tagRepo.InstanceExists was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TagID    int64
		ItemType string
		ItemID   int64
	}{
		Ctx:      ctx,
		TagID:    tagID,
		ItemType: itemType,
		ItemID:   itemID,
	}
	mock.lockInstanceExists.Lock()
	mock.calls.InstanceExists = append(mock.calls.InstanceExists, callInfo)
	mock.lockInstanceExists.Unlock()
	return mock.InstanceExistsFunc(ctx, tagID, itemType, itemID)
}

func (mock *tagRepoMock) InstanceExistsCalls() []struct {
	Ctx      context.Context
	TagID    int64
	ItemType string
	ItemID   int64
} {
	mock.lockInstanceExists.RLock()
	calls := mock.calls.InstanceExists
	mock.lockInstanceExists.RUnlock()
	return calls
}

func (mock *tagRepoMock) CountInstances(ctx context.Context, tagID int64) (int, error) {
	if mock.CountInstancesFunc == nil {
		panic("tagRepoMock.CountInstancesFunc: method is nil but tagRepo.CountInstances was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		TagID int64
	}{
		Ctx:   ctx,
		TagID: tagID,
	}
	mock.lockCountInstances.Lock()
	mock.calls.CountInstances = append(mock.calls.CountInstances, callInfo)
	mock.lockCountInstances.Unlock()
	return mock.CountInstancesFunc(ctx, tagID)
}

func (mock *tagRepoMock) CountInstancesCalls() []struct {
	Ctx   context.Context
	TagID int64
} {
	mock.lockCountInstances.RLock()
	calls := mock.calls.CountInstances
	mock.lockCountInstances.RUnlock()
	return calls
}

var _ scaleRepo = &scaleRepoMock{}

type scaleRepoMock struct {
	GetByIDFunc func(context.Context, int64) (domain.Scale, error)
	CreateFunc  func(context.Context, domain.Scale) (domain.Scale, error)
	UpdateFunc  func(context.Context, domain.Scale) (domain.Scale, error)
	DeleteFunc  func(context.Context, int64) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Create []struct {
			Ctx context.Context
			S   domain.Scale
		}
		Update []struct {
			Ctx context.Context
			S   domain.Scale
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *scaleRepoMock) GetByID(ctx context.Context, id int64) (domain.Scale, error) {
	if mock.GetByIDFunc == nil {
		panic("scaleRepoMock.GetByIDFunc: method is nil but scaleRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *scaleRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *scaleRepoMock) Create(ctx context.Context, s domain.Scale) (domain.Scale, error) {
	if mock.CreateFunc == nil {
		panic("scaleRepoMock.CreateFunc: method is nil but scaleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Scale
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *scaleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Scale
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *scaleRepoMock) Update(ctx context.Context, s domain.Scale) (domain.Scale, error) {
	if mock.UpdateFunc == nil {
		panic("scaleRepoMock.UpdateFunc: method is nil but scaleRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Scale
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, s)
}

func (mock *scaleRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	S   domain.Scale
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *scaleRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("scaleRepoMock.DeleteFunc: method is nil but scaleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *scaleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	SetWindowFunc func(context.Context, domain.ActivityWindowUpdate) (bool, error)

	calls struct {
		SetWindow []struct {
			Ctx context.Context
			U   domain.ActivityWindowUpdate
		}
	}
	lockSetWindow sync.RWMutex
}

func (mock *activityRepoMock) SetWindow(ctx context.Context, u domain.ActivityWindowUpdate) (bool, error) {
	if mock.SetWindowFunc == nil {
		panic("activityRepoMock.SetWindowFunc: method is nil but activityRepo.SetWindow was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.ActivityWindowUpdate
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockSetWindow.Lock()
	mock.calls.SetWindow = append(mock.calls.SetWindow, callInfo)
	mock.lockSetWindow.Unlock()
	return mock.SetWindowFunc(ctx, u)
}

func (mock *activityRepoMock) SetWindowCalls() []struct {
	Ctx context.Context
	U   domain.ActivityWindowUpdate
} {
	mock.lockSetWindow.RLock()
	calls := mock.calls.SetWindow
	mock.lockSetWindow.RUnlock()
	return calls
}

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	UpsertConfigFunc func(context.Context, []domain.Setting) error
	UpsertCourseFunc func(context.Context, int64, []domain.Setting) error

	calls struct {
		UpsertConfig []struct {
			Ctx      context.Context
			Settings []domain.Setting
		}
		UpsertCourse []struct {
			Ctx      context.Context
			CourseID int64
			Settings []domain.Setting
		}
	}
	lockUpsertConfig sync.RWMutex
	lockUpsertCourse sync.RWMutex
}

func (mock *settingsRepoMock) UpsertConfig(ctx context.Context, settings []domain.Setting) error {
	if mock.UpsertConfigFunc == nil {
		panic("settingsRepoMock.UpsertConfigFunc: method is nil but settingsRepo.UpsertConfig was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Settings []domain.Setting
	}{
		Ctx:      ctx,
		Settings: settings,
	}
	mock.lockUpsertConfig.Lock()
	mock.calls.UpsertConfig = append(mock.calls.UpsertConfig, callInfo)
	mock.lockUpsertConfig.Unlock()
	return mock.UpsertConfigFunc(ctx, settings)
}

func (mock *settingsRepoMock) UpsertConfigCalls() []struct {
	Ctx      context.Context
	Settings []domain.Setting
} {
	mock.lockUpsertConfig.RLock()
	calls := mock.calls.UpsertConfig
	mock.lockUpsertConfig.RUnlock()
	return calls
}

func (mock *settingsRepoMock) UpsertCourse(ctx context.Context, courseID int64, settings []domain.Setting) error {
	if mock.UpsertCourseFunc == nil {
		panic("settingsRepoMock.UpsertCourseFunc: method is nil but settingsRepo.UpsertCourse was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		CourseID int64
		Settings []domain.Setting
	}{
		Ctx:      ctx,
		CourseID: courseID,
		Settings: settings,
	}
	mock.lockUpsertCourse.Lock()
	mock.calls.UpsertCourse = append(mock.calls.UpsertCourse, callInfo)
	mock.lockUpsertCourse.Unlock()
	return mock.UpsertCourseFunc(ctx, courseID, settings)
}

func (mock *settingsRepoMock) UpsertCourseCalls() []struct {
	Ctx      context.Context
	CourseID int64
	Settings []domain.Setting
} {
	mock.lockUpsertCourse.RLock()
	calls := mock.calls.UpsertCourse
	mock.lockUpsertCourse.RUnlock()
	return calls
}

var _ enrolRepo = &enrolRepoMock{}

type enrolRepoMock struct {
	FindUserFunc        func(context.Context, string, string) (domain.User, error)
	RoleIDFunc          func(context.Context, string) (int64, error)
	UpsertEnrolmentFunc func(context.Context, domain.Enrolment, int64) error
	AssignRoleFunc      func(context.Context, domain.Enrolment, int64) error
	DeleteEnrolmentFunc func(context.Context, int64, int64) (bool, error)
	UnassignRolesFunc   func(context.Context, int64, int64) (int64, error)

	calls struct {
		FindUser []struct {
			Ctx      context.Context
			Username string
			Email    string
		}
		RoleID []struct {
			Ctx       context.Context
			Shortname string
		}
		UpsertEnrolment []struct {
			Ctx context.Context
			E   domain.Enrolment
			Now int64
		}
		AssignRole []struct {
			Ctx context.Context
			E   domain.Enrolment
			Now int64
		}
		DeleteEnrolment []struct {
			Ctx      context.Context
			UserID   int64
			CourseID int64
		}
		UnassignRoles []struct {
			Ctx      context.Context
			UserID   int64
			CourseID int64
		}
	}
	lockFindUser        sync.RWMutex
	lockRoleID          sync.RWMutex
	lockUpsertEnrolment sync.RWMutex
	lockAssignRole      sync.RWMutex
	lockDeleteEnrolment sync.RWMutex
	lockUnassignRoles   sync.RWMutex
}

func (mock *enrolRepoMock) FindUser(ctx context.Context, username string, email string) (domain.User, error) {
	if mock.FindUserFunc == nil {
		panic("enrolRepoMock.FindUserFunc: method is nil but enrolRepo.FindUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Email    string
	}{
		Ctx:      ctx,
		Username: username,
		Email:    email,
	}
	mock.lockFindUser.Lock()
	mock.calls.FindUser = append(mock.calls.FindUser, callInfo)
	mock.lockFindUser.Unlock()
	return mock.FindUserFunc(ctx, username, email)
}

func (mock *enrolRepoMock) FindUserCalls() []struct {
	Ctx      context.Context
	Username string
	Email    string
} {
	mock.lockFindUser.RLock()
	calls := mock.calls.FindUser
	mock.lockFindUser.RUnlock()
	return calls
}

func (mock *enrolRepoMock) RoleID(ctx context.Context, shortname string) (int64, error) {
	if mock.RoleIDFunc == nil {
		panic("enrolRepoMock.RoleIDFunc: method is nil but enrolRepo.RoleID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Shortname string
	}{
		Ctx:       ctx,
		Shortname: shortname,
	}
	mock.lockRoleID.Lock()
	mock.calls.RoleID = append(mock.calls.RoleID, callInfo)
	mock.lockRoleID.Unlock()
	return mock.RoleIDFunc(ctx, shortname)
}

func (mock *enrolRepoMock) RoleIDCalls() []struct {
	Ctx       context.Context
	Shortname string
} {
	mock.lockRoleID.RLock()
	calls := mock.calls.RoleID
	mock.lockRoleID.RUnlock()
	return calls
}

func (mock *enrolRepoMock) UpsertEnrolment(ctx context.Context, e domain.Enrolment, now int64) error {
	if mock.UpsertEnrolmentFunc == nil {
		panic("enrolRepoMock.UpsertEnrolmentFunc: method is nil but enrolRepo.UpsertEnrolment was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Enrolment
		Now int64
	}{
		Ctx: ctx,
		E:   e,
		Now: now,
	}
	mock.lockUpsertEnrolment.Lock()
	mock.calls.UpsertEnrolment = append(mock.calls.UpsertEnrolment, callInfo)
	mock.lockUpsertEnrolment.Unlock()
	return mock.UpsertEnrolmentFunc(ctx, e, now)
}

func (mock *enrolRepoMock) UpsertEnrolmentCalls() []struct {
	Ctx context.Context
	E   domain.Enrolment
	Now int64
} {
	mock.lockUpsertEnrolment.RLock()
	calls := mock.calls.UpsertEnrolment
	mock.lockUpsertEnrolment.RUnlock()
	return calls
}

func (mock *enrolRepoMock) AssignRole(ctx context.Context, e domain.Enrolment, now int64) error {
	if mock.AssignRoleFunc == nil {
		panic("enrolRepoMock.AssignRoleFunc: method is nil but enrolRepo.AssignRole was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.Enrolment
		Now int64
	}{
		Ctx: ctx,
		E:   e,
		Now: now,
	}
	mock.lockAssignRole.Lock()
	mock.calls.AssignRole = append(mock.calls.AssignRole, callInfo)
	mock.lockAssignRole.Unlock()
	return mock.AssignRoleFunc(ctx, e, now)
}

func (mock *enrolRepoMock) AssignRoleCalls() []struct {
	Ctx context.Context
	E   domain.Enrolment
	Now int64
} {
	mock.lockAssignRole.RLock()
	calls := mock.calls.AssignRole
	mock.lockAssignRole.RUnlock()
	return calls
}

func (mock *enrolRepoMock) DeleteEnrolment(ctx context.Context, userID int64, courseID int64) (bool, error) {
	if mock.DeleteEnrolmentFunc == nil {
		panic("enrolRepoMock.DeleteEnrolmentFunc: method is nil but enrolRepo.DeleteEnrolment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		CourseID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		CourseID: courseID,
	}
	mock.lockDeleteEnrolment.Lock()
	mock.calls.DeleteEnrolment = append(mock.calls.DeleteEnrolment, callInfo)
	mock.lockDeleteEnrolment.Unlock()
	return mock.DeleteEnrolmentFunc(ctx, userID, courseID)
}

func (mock *enrolRepoMock) DeleteEnrolmentCalls() []struct {
	Ctx      context.Context
	UserID   int64
	CourseID int64
} {
	mock.lockDeleteEnrolment.RLock()
	calls := mock.calls.DeleteEnrolment
	mock.lockDeleteEnrolment.RUnlock()
	return calls
}

func (mock *enrolRepoMock) UnassignRoles(ctx context.Context, userID int64, courseID int64) (int64, error) {
	if mock.UnassignRolesFunc == nil {
		panic("enrolRepoMock.UnassignRolesFunc: method is nil but enrolRepo.UnassignRoles was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		CourseID int64
	}{
		Ctx:      ctx,
		UserID:   userID,
		CourseID: courseID,
	}
	mock.lockUnassignRoles.Lock()
	mock.calls.UnassignRoles = append(mock.calls.UnassignRoles, callInfo)
	mock.lockUnassignRoles.Unlock()
	return mock.UnassignRolesFunc(ctx, userID, courseID)
}

func (mock *enrolRepoMock) UnassignRolesCalls() []struct {
	Ctx      context.Context
	UserID   int64
	CourseID int64
} {
	mock.lockUnassignRoles.RLock()
	calls := mock.calls.UnassignRoles
	mock.lockUnassignRoles.RUnlock()
	return calls
}

var _ journal = &journalMock{}

type journalMock struct {
	LogFunc func(context.Context, domain.JournalRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.JournalRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *journalMock) Log(ctx context.Context, record domain.JournalRecord) error {
	if mock.LogFunc == nil {
		panic("journalMock.LogFunc: method is nil but journal.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.JournalRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *journalMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.JournalRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(context.Context, func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ cacheInvalidator = &cacheInvalidatorMock{}

type cacheInvalidatorMock struct {
	InvalidateFunc func()

	calls struct {
		Invalidate []struct{}
	}
	lockInvalidate sync.RWMutex
}

func (mock *cacheInvalidatorMock) Invalidate() {
	if mock.InvalidateFunc == nil {
		panic("cacheInvalidatorMock.InvalidateFunc: method is nil but cacheInvalidator.Invalidate was just called")
	}
	callInfo := struct{}{}
	mock.lockInvalidate.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, callInfo)
	mock.lockInvalidate.Unlock()
	mock.InvalidateFunc()
}

func (mock *cacheInvalidatorMock) InvalidateCalls() []struct{} {
	mock.lockInvalidate.RLock()
	calls := mock.calls.Invalidate
	mock.lockInvalidate.RUnlock()
	return calls
}
