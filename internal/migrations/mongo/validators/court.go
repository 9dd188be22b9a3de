package validators

import "go.mongodb.org/mongo-driver/bson"

var CourtValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"owner_id",
			"name",
			"hourly_rate",
			"opening_time",
			"closing_time",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"owner_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"sport": bson.M{
				"bsonType":  "string",
				"maxLength": 50,
			},

			"hourly_rate": bson.M{
				"bsonType":         []string{"double", "int", "long"},
				"exclusiveMinimum": true,
				"minimum":          0,
			},

			"opening_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"closing_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
