// Package mocks provides centralized mock implementations for testing.
//
// Each mock mirrors one service-layer interface with per-method function
// hooks plus default return values, so API handler tests can configure
// exactly the behavior they need:
//
//	jwtService := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: userID}, nil
//	    },
//	}
//
// Store-level mocks live in the service package's own test files, where
// testify/mock expectation tracking is more useful.
package mocks
