package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/model"
)

func TestCompanyService_Create(t *testing.T) {
	input := CompanyInput{
		Name:        "Acme Corp",
		Industry:    "Manufacturing",
		Description: "Widgets at scale",
	}

	tests := []struct {
		name          string
		setupMock     func(*MockCompanyRepository)
		expectedError error
	}{
		{
			name: "successful create",
			setupMock: func(m *MockCompanyRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Company")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "company already exists",
			setupMock: func(m *MockCompanyRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 9, UserID: 1}, nil)
			},
			expectedError: errors.ErrCompanyExists,
		},
		{
			// Two creates race past the existence check; the insert that
			// loses to the user_id unique index maps to the same conflict.
			name: "lost insert race maps to conflict",
			setupMock: func(m *MockCompanyRepository) {
				m.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Company")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrCompanyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCompanyRepository)
			tt.setupMock(mockRepo)

			svc := NewCompanyService(mockRepo, nil, nil)
			company, err := svc.Create(context.Background(), 1, input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, company)
			} else {
				require.NoError(t, err)
				require.NotNil(t, company)
				assert.Equal(t, uint(1), company.UserID)
				assert.Equal(t, input.Name, company.Name)
				assert.Equal(t, input.Industry, company.Industry)
				assert.Equal(t, input.Description, company.Description)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCompanyService_ResolveByUser(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("FindByUserID", mock.Anything, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByUserID", mock.Anything, uint(3)).Return(&model.Company{ID: 4, UserID: 3, Name: "Acme"}, nil)

	svc := NewCompanyService(mockRepo, nil, nil)

	_, err := svc.ResolveByUser(context.Background(), 2)
	assert.ErrorIs(t, err, errors.ErrCompanyNotFound)

	company, err := svc.ResolveByUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, uint(4), company.ID)
}

func TestCompanyService_Update(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1, Name: "Old"}, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Company) bool {
		return c.ID == 4 && c.Name == "New Name" && c.Industry == "Retail"
	})).Return(nil)

	svc := NewCompanyService(mockRepo, nil, nil)
	company, err := svc.Update(context.Background(), 1, CompanyInput{
		Name:        "New Name",
		Industry:    "Retail",
		Description: "Updated",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", company.Name)
	mockRepo.AssertExpectations(t)
}

func TestCompanyService_Update_NoCompany(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCompanyService(mockRepo, nil, nil)
	_, err := svc.Update(context.Background(), 1, CompanyInput{Name: "X", Industry: "Y", Description: "Z"})

	assert.ErrorIs(t, err, errors.ErrCompanyNotFound)
}

func TestCompanyService_Delete(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("DeleteByUserID", mock.Anything, uint(1)).Return(int64(1), nil)
	mockRepo.On("DeleteByUserID", mock.Anything, uint(2)).Return(int64(0), nil)

	svc := NewCompanyService(mockRepo, nil, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), errors.ErrCompanyNotFound)
}

func TestCompanyService_UploadLogo(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
	mockRepo.On("UpdateLogoURL", mock.Anything, uint(4), "http://store.example/company-logos/logos/4-abc").Return(nil)

	mockStore := new(MockLogoStore)
	mockStore.On("Upload", mock.Anything, mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "logos/4-")
	}), mock.Anything, int64(11), "image/png").
		Return("http://store.example/company-logos/logos/4-abc", nil)

	svc := NewCompanyService(mockRepo, mockStore, nil)
	url, err := svc.UploadLogo(context.Background(), 1, strings.NewReader("fake-bytes!"), 11, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "http://store.example/company-logos/logos/4-abc", url)
	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestCompanyService_UploadLogo_StorageNotConfigured(t *testing.T) {
	svc := NewCompanyService(new(MockCompanyRepository), nil, nil)

	_, err := svc.UploadLogo(context.Background(), 1, strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, errors.ErrStorageNotConfigured)
}

func TestCompanyService_Search(t *testing.T) {
	mockRepo := new(MockCompanyRepository)
	mockRepo.On("Search", mock.Anything, "solar").Return([]model.Company{
		{ID: 1, Name: "BlueGrid Energy", Industry: "Energy"},
	}, nil)

	svc := NewCompanyService(mockRepo, nil, nil)
	companies, err := svc.Search(context.Background(), "solar")

	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "BlueGrid Energy", companies[0].Name)
}
