package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

// Document field names. They must match the bson tags in the entity package.
const (
	fieldID                   = "_id"
	fieldUserName             = "user_name"
	fieldNormalizedUserName   = "normalized_user_name"
	fieldEmail                = "email"
	fieldNormalizedEmail      = "normalized_email"
	fieldEmailConfirmed       = "email_confirmed"
	fieldPasswordHash         = "password_hash"
	fieldSecurityStamp        = "security_stamp"
	fieldPhoneNumber          = "phone_number"
	fieldPhoneNumberConfirmed = "phone_number_confirmed"
	fieldTwoFactorEnabled     = "two_factor_enabled"
	fieldLockoutEnd           = "lockout_end"
	fieldLockoutEnabled       = "lockout_enabled"
	fieldAccessFailedCount    = "access_failed_count"
	fieldClaims               = "claims"
	fieldLogins               = "logins"
	fieldTokens               = "tokens"
	fieldRoles                = "roles"

	fieldRoleName           = "name"
	fieldNormalizedRoleName = "normalized_name"

	fieldClaimType       = "type"
	fieldClaimValue      = "value"
	fieldLoginProvider   = "login_provider"
	fieldProviderKey     = "provider_key"
	fieldDisplayName     = "display_name"
	fieldProjectedUserID = "user_id"
	fieldProjectedRoleID = "role_id"
)

func byID(id any) bson.D {
	return bson.D{{Key: fieldID, Value: id}}
}

func byField(field string, value any) bson.D {
	return bson.D{{Key: field, Value: value}}
}

// setField is the partial update used for scalar setters and sub-collection writes.
func setField(field string, value any) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: field, Value: value}}}}
}

func claimElemMatch(c entity.Claim) bson.D {
	return bson.D{{Key: fieldClaims, Value: bson.D{{Key: "$elemMatch", Value: bson.D{
		{Key: fieldClaimType, Value: c.Type},
		{Key: fieldClaimValue, Value: c.Value},
	}}}}}
}

func roleElemMatch(roleID any) bson.D {
	return bson.D{{Key: fieldRoles, Value: bson.D{{Key: "$elemMatch", Value: bson.D{
		{Key: fieldID, Value: roleID},
	}}}}}
}

func unwind(field string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + field},
		{Key: "preserveNullAndEmptyArrays", Value: false},
	}}}
}

// loginPipeline finds one login across the collection, or within one user when
// userID is non-nil.
func loginPipeline(userID any, loginProvider, providerKey string) mongo.Pipeline {
	pipeline := mongo.Pipeline{}
	if userID != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: byID(userID)}})
	}
	return append(pipeline,
		unwind(fieldLogins),
		bson.D{{Key: "$match", Value: bson.D{
			{Key: fieldLogins + "." + fieldLoginProvider, Value: loginProvider},
			{Key: fieldLogins + "." + fieldProviderKey, Value: providerKey},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: fieldID, Value: 0},
			{Key: fieldProjectedUserID, Value: "$" + fieldID},
			{Key: fieldLoginProvider, Value: "$" + fieldLogins + "." + fieldLoginProvider},
			{Key: fieldProviderKey, Value: "$" + fieldLogins + "." + fieldProviderKey},
			{Key: fieldDisplayName, Value: "$" + fieldLogins + "." + fieldDisplayName},
		}}},
		bson.D{{Key: "$limit", Value: 1}},
	)
}

func rolePipeline(userID, roleID any) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: byID(userID)}},
		unwind(fieldRoles),
		{{Key: "$match", Value: bson.D{{Key: fieldRoles + "." + fieldID, Value: roleID}}}},
		{{Key: "$project", Value: bson.D{
			{Key: fieldID, Value: 0},
			{Key: fieldProjectedUserID, Value: "$" + fieldID},
			{Key: fieldProjectedRoleID, Value: "$" + fieldRoles + "." + fieldID},
		}}},
		{{Key: "$limit", Value: 1}},
	}
}
