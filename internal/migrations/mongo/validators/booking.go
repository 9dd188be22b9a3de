package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"court_id",
			"date",
			"start_time",
			"end_time",
			"status",
			"number_of_players",
			"contact_name",
			"contact_phone",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"court_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  `^\d{4}-\d{2}-\d{2}$`,
			},

			"start_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"end_time": bson.M{
				"bsonType": "string",
				"pattern":  `^([01][0-9]|2[0-3]):[0-5][0-9]$`,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"PENDING",
					"CONFIRMED",
					"COMPLETED",
					"CANCELLED_BY_USER",
					"CANCELLED_BY_MANAGER",
				},
			},

			"cancellation_reason": bson.M{
				"bsonType": "string",
			},

			"number_of_players": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  22,
			},

			"total_price": bson.M{
				"bsonType": []string{"double", "int", "long"},
				"minimum":  0,
			},

			"contact_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"contact_phone": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9]\d{7,14}$`,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
