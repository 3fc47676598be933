// Package dynamodb stores small text blobs as DynamoDB items.
//
// Each blob is one item. The table needs a string partition key named "name":
//
//	aws dynamodb create-table \
//	  --table-name jsonfile-blobs \
//	  --attribute-definitions AttributeName=name,AttributeType=S \
//	  --key-schema AttributeName=name,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
//
// Content lives in the binary attribute "data". DynamoDB caps items at 400KB,
// so Put rejects larger blobs with ErrItemTooLarge.
package dynamodb
