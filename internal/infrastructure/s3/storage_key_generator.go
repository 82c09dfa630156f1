package s3

type StorageKeyGeneratorImpl struct{}

func NewStorageKeyGenerator() *StorageKeyGeneratorImpl {
	return &StorageKeyGeneratorImpl{}
}

func (g *StorageKeyGeneratorImpl) ProductImageKey(productID, filename string) string {
	return ProductImageKey(productID, filename)
}

func (g *StorageKeyGeneratorImpl) CategoryImageKey(categoryID, filename string) string {
	return CategoryImageKey(categoryID, filename)
}
