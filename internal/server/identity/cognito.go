package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/aws/smithy-go"
)

// CognitoProvider implements Provider over the Cognito user pools API.
type CognitoProvider struct {
	client       *cognitoidentityprovider.Client
	poolID       string
	clientID     string
	clientSecret string
}

func NewCognitoProvider(client *cognitoidentityprovider.Client, poolID, clientID, clientSecret string) *CognitoProvider {
	return &CognitoProvider{
		client:       client,
		poolID:       poolID,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (p *CognitoProvider) secretHash(username string) *string {
	return SecretHash(username, p.clientID, p.clientSecret)
}

func (p *CognitoProvider) SignUp(ctx context.Context, in *SignUpInput) error {
	_, err := p.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(in.Username),
		Password:   aws.String(in.Password),
		SecretHash: p.secretHash(in.Username),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(in.Email)},
			{Name: aws.String("given_name"), Value: aws.String(in.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(in.LastName)},
			{Name: aws.String("phone_number"), Value: aws.String(in.Phone)},
			{Name: aws.String("custom:userRole"), Value: aws.String(in.Role)},
		},
	})
	return classify(err)
}

func (p *CognitoProvider) ConfirmSignUp(ctx context.Context, username, code string) error {
	_, err := p.client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		SecretHash:       p.secretHash(username),
	})
	return classify(err)
}

func (p *CognitoProvider) ResendConfirmationCode(ctx context.Context, username string) error {
	_, err := p.client.ResendConfirmationCode(ctx, &cognitoidentityprovider.ResendConfirmationCodeInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(username),
		SecretHash: p.secretHash(username),
	})
	return classify(err)
}

func (p *CognitoProvider) AddToGroup(ctx context.Context, username, group string) error {
	_, err := p.client.AdminAddUserToGroup(ctx, &cognitoidentityprovider.AdminAddUserToGroupInput{
		UserPoolId: aws.String(p.poolID),
		Username:   aws.String(username),
		GroupName:  aws.String(group),
	})
	return classify(err)
}

func (p *CognitoProvider) UserExists(ctx context.Context, username string) (bool, error) {
	_, err := p.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(p.poolID),
		Username:   aws.String(username),
	})
	if err != nil {
		var notFound *types.UserNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, classify(err)
	}
	return true, nil
}

func (p *CognitoProvider) EmailExists(ctx context.Context, email string) (bool, error) {
	out, err := p.client.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(p.poolID),
		Filter:     aws.String(fmt.Sprintf("email = %q", email)),
	})
	if err != nil {
		return false, classify(err)
	}
	return len(out.Users) > 0, nil
}

func (p *CognitoProvider) UserAttributes(ctx context.Context, username string) (map[string]string, error) {
	out, err := p.client.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(p.poolID),
		Username:   aws.String(username),
	})
	if err != nil {
		return nil, classify(err)
	}

	attrs := make(map[string]string, len(out.UserAttributes))
	for _, a := range out.UserAttributes {
		attrs[aws.ToString(a.Name)] = aws.ToString(a.Value)
	}
	return attrs, nil
}

func (p *CognitoProvider) InitiateAuth(ctx context.Context, username, password string) (*Tokens, error) {
	params := map[string]string{
		"USERNAME": username,
		"PASSWORD": password,
	}
	if hash := p.secretHash(username); hash != nil {
		params["SECRET_HASH"] = *hash
	}

	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow:       types.AuthFlowTypeUserPasswordAuth,
		ClientId:       aws.String(p.clientID),
		AuthParameters: params,
	})
	if err != nil {
		return nil, classify(err)
	}

	// A nil result means the pool demands a challenge this flow does not
	// implement (MFA, forced password change).
	if out.AuthenticationResult == nil {
		return nil, NewError(KindNotAuthorized, "Authentication challenge not supported.")
	}

	return &Tokens{
		IDToken:      aws.ToString(out.AuthenticationResult.IdToken),
		AccessToken:  aws.ToString(out.AuthenticationResult.AccessToken),
		RefreshToken: aws.ToString(out.AuthenticationResult.RefreshToken),
	}, nil
}

func (p *CognitoProvider) ForgotPassword(ctx context.Context, username string) error {
	_, err := p.client.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(p.clientID),
		Username:   aws.String(username),
		SecretHash: p.secretHash(username),
	})
	return classify(err)
}

func (p *CognitoProvider) ConfirmForgotPassword(ctx context.Context, username, code, newPassword string) error {
	_, err := p.client.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(p.clientID),
		Username:         aws.String(username),
		ConfirmationCode: aws.String(code),
		Password:         aws.String(newPassword),
		SecretHash:       p.secretHash(username),
	})
	return classify(err)
}

// classify translates SDK errors into tagged *Error values. Unrecognized
// service errors keep their provider message under KindOther.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var (
		exists       *types.UsernameExistsException
		alias        *types.AliasExistsException
		notFound     *types.UserNotFoundException
		mismatch     *types.CodeMismatchException
		expired      *types.ExpiredCodeException
		notConfirmed *types.UserNotConfirmedException
		notAuth      *types.NotAuthorizedException
		invalidParam *types.InvalidParameterException
		invalidPass  *types.InvalidPasswordException
	)

	switch {
	case errors.As(err, &exists), errors.As(err, &alias):
		return wrapError(KindAccountExists, "Email already exists!", err)
	case errors.As(err, &notFound):
		return wrapError(KindAccountNotFound, "User not found.", err)
	case errors.As(err, &mismatch):
		return wrapError(KindCodeMismatch, "Invalid verification code.", err)
	case errors.As(err, &expired):
		return wrapError(KindCodeExpired, "Verification code expired.", err)
	case errors.As(err, &notConfirmed):
		return wrapError(KindNotConfirmed, "User not confirmed.", err)
	case errors.As(err, &notAuth):
		return wrapError(KindNotAuthorized, "Incorrect username or password.", err)
	case errors.As(err, &invalidParam), errors.As(err, &invalidPass):
		return wrapError(KindInvalidParameter, "Invalid parameters provided.", err)
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		return wrapError(KindOther, ae.ErrorMessage(), err)
	}

	return err
}
