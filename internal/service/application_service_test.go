package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sarvessh05/TenderHub/internal/errors"
	"github.com/sarvessh05/TenderHub/internal/model"
)

func TestApplicationService_Apply(t *testing.T) {
	validInput := ApplicationInput{
		TenderID:         8,
		Proposal:         "We can deliver in 10 weeks",
		ProposedBudget:   decimal.NewFromInt(70000),
		ProposedTimeline: "10 weeks",
	}

	tests := []struct {
		name          string
		input         ApplicationInput
		setupMock     func(*MockCompanyRepository, *MockTenderRepository, *MockApplicationRepository)
		expectedError error
	}{
		{
			name:  "successful apply",
			input: validInput,
			setupMock: func(cr *MockCompanyRepository, tr *MockTenderRepository, ar *MockApplicationRepository) {
				cr.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
				tr.On("FindByID", mock.Anything, uint(8)).Return(&model.Tender{ID: 8, CompanyID: 2}, nil)
				ar.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Application) bool {
					return a.CompanyID == 4 && a.TenderID == 8
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "no company profile",
			input: validInput,
			setupMock: func(cr *MockCompanyRepository, tr *MockTenderRepository, ar *MockApplicationRepository) {
				cr.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCompanyNotFound,
		},
		{
			name:  "dangling tender reference rejected",
			input: validInput,
			setupMock: func(cr *MockCompanyRepository, tr *MockTenderRepository, ar *MockApplicationRepository) {
				cr.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
				tr.On("FindByID", mock.Anything, uint(8)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrTenderNotFound,
		},
		{
			name: "non-positive proposed budget",
			input: ApplicationInput{
				TenderID:         8,
				Proposal:         validInput.Proposal,
				ProposedBudget:   decimal.Zero,
				ProposedTimeline: validInput.ProposedTimeline,
			},
			setupMock: func(cr *MockCompanyRepository, tr *MockTenderRepository, ar *MockApplicationRepository) {
				cr.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
				tr.On("FindByID", mock.Anything, uint(8)).Return(&model.Tender{ID: 8}, nil)
			},
			expectedError: errors.ErrInvalidBudget,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			companyRepo := new(MockCompanyRepository)
			tenderRepo := new(MockTenderRepository)
			applicationRepo := new(MockApplicationRepository)
			tt.setupMock(companyRepo, tenderRepo, applicationRepo)

			svc := NewApplicationService(companyRepo, tenderRepo, applicationRepo)
			application, err := svc.Apply(context.Background(), 1, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, application)
			} else {
				require.NoError(t, err)
				require.NotNil(t, application)
				assert.Equal(t, uint(4), application.CompanyID)
			}

			companyRepo.AssertExpectations(t)
			tenderRepo.AssertExpectations(t)
			applicationRepo.AssertExpectations(t)
		})
	}
}

// Applying to one's own tender is allowed: the marketplace never decided
// to forbid it, so the service does not check tender ownership.
func TestApplicationService_Apply_OwnTenderPermitted(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	tenderRepo := new(MockTenderRepository)
	applicationRepo := new(MockApplicationRepository)

	companyRepo.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
	tenderRepo.On("FindByID", mock.Anything, uint(8)).Return(&model.Tender{ID: 8, CompanyID: 4}, nil)
	applicationRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Application")).Return(nil)

	svc := NewApplicationService(companyRepo, tenderRepo, applicationRepo)
	application, err := svc.Apply(context.Background(), 1, ApplicationInput{
		TenderID:         8,
		Proposal:         "Our own bid",
		ProposedBudget:   decimal.NewFromInt(100),
		ProposedTimeline: "2 weeks",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(4), application.CompanyID)
}

func TestApplicationService_MyProposals(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	applicationRepo := new(MockApplicationRepository)

	companyRepo.On("FindByUserID", mock.Anything, uint(1)).Return(&model.Company{ID: 4, UserID: 1}, nil)
	applicationRepo.On("ListForCompany", mock.Anything, uint(4)).Return([]model.CompanyProposal{
		{ID: 1, TenderTitle: "Fleet telematics rollout"},
	}, nil)

	svc := NewApplicationService(companyRepo, new(MockTenderRepository), applicationRepo)
	proposals, err := svc.MyProposals(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, "Fleet telematics rollout", proposals[0].TenderTitle)
}

func TestApplicationService_MyProposals_NoCompany(t *testing.T) {
	companyRepo := new(MockCompanyRepository)
	companyRepo.On("FindByUserID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewApplicationService(companyRepo, new(MockTenderRepository), new(MockApplicationRepository))
	_, err := svc.MyProposals(context.Background(), 1)

	assert.ErrorIs(t, err, errors.ErrCompanyNotFound)
}

func TestApplicationService_ProposalsForTender(t *testing.T) {
	applicationRepo := new(MockApplicationRepository)
	applicationRepo.On("ListForTender", mock.Anything, uint(8)).Return([]model.TenderProposal{
		{ID: 1, CompanyName: "Northstar Logistics"},
		{ID: 2, CompanyName: "BlueGrid Energy"},
	}, nil)

	svc := NewApplicationService(new(MockCompanyRepository), new(MockTenderRepository), applicationRepo)
	proposals, err := svc.ProposalsForTender(context.Background(), 8)

	require.NoError(t, err)
	require.Len(t, proposals, 2)
	assert.Equal(t, "Northstar Logistics", proposals[0].CompanyName)
}
